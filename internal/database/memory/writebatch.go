// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

type operation struct {
	key    string
	value  []byte
	delete bool
}

type writeBatch struct {
	operations []operation
	valueSize  int
	database   *Database
}

func newWriteBatch(database *Database) *writeBatch {
	return &writeBatch{
		database: database,
	}
}

// Put adds a put operation to the batch.
// The value is deep copied.
func (wb *writeBatch) Put(key, value []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:   string(key),
		value: copyBytes(value),
	})
	wb.valueSize += len(value)
	return nil
}

// Del adds a delete operation to the batch.
func (wb *writeBatch) Del(key []byte) (err error) {
	wb.operations = append(wb.operations, operation{
		key:    string(key),
		delete: true,
	})
	return nil
}

// ValueSize returns the size of the values put in the batch.
func (wb *writeBatch) ValueSize() int {
	return wb.valueSize
}

// Flush applies all the operations of the batch to the
// database in a single locked section, then resets the batch.
func (wb *writeBatch) Flush() (err error) {
	db := wb.database
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()

	for _, op := range wb.operations {
		if op.delete {
			delete(db.keyValues, op.key)
			continue
		}
		db.keyValues[op.key] = op.value
	}

	wb.Reset()
	return nil
}

// Reset discards all the pending operations of the batch.
func (wb *writeBatch) Reset() {
	wb.operations = nil
	wb.valueSize = 0
}
