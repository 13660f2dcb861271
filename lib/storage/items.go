// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/ctt-network/kp/lib/common"
)

// Prefix returns twox128(module) ++ twox128(item), the prefix of every
// key of a storage item.
func Prefix(module, item string) []byte {
	return append(common.Twox128Hash([]byte(module)), common.Twox128Hash([]byte(item))...)
}

func encodeKey(prefix []byte, keys ...interface{}) ([]byte, error) {
	out := make([]byte, len(prefix), len(prefix)+40*len(keys))
	copy(out, prefix)
	for _, key := range keys {
		encoded, err := scale.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoding storage key %v: %w", key, err)
		}
		out = append(out, common.Twox64Concat(encoded)...)
	}
	return out, nil
}

func get[V any](s *Storage, key []byte) (value V, found bool, err error) {
	encoded, found, err := s.Get(key)
	if err != nil || !found {
		return value, found, err
	}

	err = scale.Unmarshal(encoded, &value)
	if err != nil {
		return value, false, fmt.Errorf("decoding value at 0x%x: %w", key, err)
	}
	return value, true, nil
}

func put[V any](s *Storage, key []byte, value V) error {
	encoded, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value %T: %w", value, err)
	}
	s.Set(key, encoded)
	return nil
}

// Value is a single value storage item.
type Value[V any] struct {
	key []byte
}

// NewValue creates a value storage item for the module.
func NewValue[V any](module, name string) Value[V] {
	return Value[V]{key: Prefix(module, name)}
}

// Get returns the stored value, or the zero value if it is not set.
func (v Value[V]) Get(s *Storage) (value V, err error) {
	value, _, err = get[V](s, v.key)
	return value, err
}

// TryGet returns the stored value and true, or false if it is not set.
func (v Value[V]) TryGet(s *Storage) (value V, found bool, err error) {
	return get[V](s, v.key)
}

func (v Value[V]) Put(s *Storage, value V) error {
	return put(s, v.key, value)
}

func (v Value[V]) Exists(s *Storage) (bool, error) {
	return s.Has(v.key)
}

func (v Value[V]) Kill(s *Storage) {
	s.Delete(v.key)
}

// Mutate applies fn to the stored (or zero) value and stores the result
// if fn returns no error.
func (v Value[V]) Mutate(s *Storage, fn func(value *V) error) error {
	value, err := v.Get(s)
	if err != nil {
		return err
	}
	err = fn(&value)
	if err != nil {
		return err
	}
	return v.Put(s, value)
}

// Map is a storage map hashing its SCALE encoded keys with Twox64Concat.
// Composite keys are expressed with a struct key type.
type Map[K, V any] struct {
	prefix []byte
}

// NewMap creates a map storage item for the module.
func NewMap[K, V any](module, name string) Map[K, V] {
	return Map[K, V]{prefix: Prefix(module, name)}
}

// Key returns the raw storage key of the map entry.
func (m Map[K, V]) Key(key K) ([]byte, error) {
	return encodeKey(m.prefix, key)
}

// Get returns the value stored at key, or the zero value if there is none.
func (m Map[K, V]) Get(s *Storage, key K) (value V, err error) {
	value, _, err = m.TryGet(s, key)
	return value, err
}

func (m Map[K, V]) TryGet(s *Storage, key K) (value V, found bool, err error) {
	k, err := m.Key(key)
	if err != nil {
		return value, false, err
	}
	return get[V](s, k)
}

func (m Map[K, V]) Put(s *Storage, key K, value V) error {
	k, err := m.Key(key)
	if err != nil {
		return err
	}
	return put(s, k, value)
}

func (m Map[K, V]) Contains(s *Storage, key K) (bool, error) {
	k, err := m.Key(key)
	if err != nil {
		return false, err
	}
	return s.Has(k)
}

func (m Map[K, V]) Remove(s *Storage, key K) error {
	k, err := m.Key(key)
	if err != nil {
		return err
	}
	s.Delete(k)
	return nil
}

func (m Map[K, V]) Mutate(s *Storage, key K, fn func(value *V) error) error {
	value, err := m.Get(s, key)
	if err != nil {
		return err
	}
	err = fn(&value)
	if err != nil {
		return err
	}
	return m.Put(s, key, value)
}

// DoubleMap is a storage map with two keys, each hashed with Twox64Concat.
type DoubleMap[K1, K2, V any] struct {
	prefix []byte
}

// NewDoubleMap creates a double map storage item for the module.
func NewDoubleMap[K1, K2, V any](module, name string) DoubleMap[K1, K2, V] {
	return DoubleMap[K1, K2, V]{prefix: Prefix(module, name)}
}

func (m DoubleMap[K1, K2, V]) Key(key1 K1, key2 K2) ([]byte, error) {
	return encodeKey(m.prefix, key1, key2)
}

func (m DoubleMap[K1, K2, V]) Get(s *Storage, key1 K1, key2 K2) (value V, err error) {
	value, _, err = m.TryGet(s, key1, key2)
	return value, err
}

func (m DoubleMap[K1, K2, V]) TryGet(s *Storage, key1 K1, key2 K2) (value V, found bool, err error) {
	k, err := m.Key(key1, key2)
	if err != nil {
		return value, false, err
	}
	return get[V](s, k)
}

func (m DoubleMap[K1, K2, V]) Put(s *Storage, key1 K1, key2 K2, value V) error {
	k, err := m.Key(key1, key2)
	if err != nil {
		return err
	}
	return put(s, k, value)
}

func (m DoubleMap[K1, K2, V]) Contains(s *Storage, key1 K1, key2 K2) (bool, error) {
	k, err := m.Key(key1, key2)
	if err != nil {
		return false, err
	}
	return s.Has(k)
}

func (m DoubleMap[K1, K2, V]) Remove(s *Storage, key1 K1, key2 K2) error {
	k, err := m.Key(key1, key2)
	if err != nil {
		return err
	}
	s.Delete(k)
	return nil
}

func (m DoubleMap[K1, K2, V]) Mutate(s *Storage, key1 K1, key2 K2, fn func(value *V) error) error {
	value, err := m.Get(s, key1, key2)
	if err != nil {
		return err
	}
	err = fn(&value)
	if err != nil {
		return err
	}
	return m.Put(s, key1, key2, value)
}
