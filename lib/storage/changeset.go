// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

// changeSet holds the upserts and deletes of a transaction
// layer, keyed by the raw storage key.
type changeSet struct {
	upserts map[string][]byte
	deletes map[string]bool
}

func newChangeSet() *changeSet {
	return &changeSet{
		upserts: make(map[string][]byte),
		deletes: make(map[string]bool),
	}
}

// get returns the value for the key if it was upserted in this
// change set, and whether it was deleted in this change set.
func (cs *changeSet) get(key string) (value []byte, upserted, deleted bool) {
	if value, ok := cs.upserts[key]; ok {
		return value, true, false
	}
	return nil, false, cs.deletes[key]
}

func (cs *changeSet) upsert(key string, value []byte) {
	delete(cs.deletes, key)
	cs.upserts[key] = value
}

func (cs *changeSet) delete(key string) {
	delete(cs.upserts, key)
	cs.deletes[key] = true
}

// mergeInto applies the changes of cs on top of the parent change set.
func (cs *changeSet) mergeInto(parent *changeSet) {
	for key := range cs.deletes {
		parent.delete(key)
	}
	for key, value := range cs.upserts {
		parent.upsert(key, value)
	}
}

func (cs *changeSet) len() int {
	return len(cs.upserts) + len(cs.deletes)
}
