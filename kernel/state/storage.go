// Package state holds the persistent state a gateway owns: a flat word
// storage space shared with the active module, and the code store that maps
// addresses to deployed executable modules.
package state

import (
	"sync"

	"github.com/nmxmxh/conduit_v1/internal/core"
)

// StorageSpace is a flat mapping from 32-byte slot to 32-byte word. The
// gateway's two reserved slots and every variable of the active module live
// in the same space; nothing here fences the reserved slots off at runtime,
// that contract is on module authors.
//
// Writes are journaled so a failed forwarded call can be rolled back to the
// snapshot taken before the module ran.
type StorageSpace struct {
	mu      sync.RWMutex
	words   map[core.Word]core.Word
	journal []journalEntry
}

type journalEntry struct {
	slot    core.Word
	prev    core.Word
	existed bool
}

// NewStorageSpace creates an empty storage space.
func NewStorageSpace() *StorageSpace {
	return &StorageSpace{
		words: make(map[core.Word]core.Word),
	}
}

// Load reads the word at slot; absent slots read as the zero word.
func (s *StorageSpace) Load(slot core.Word) core.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words[slot]
}

// Store writes the word at slot, recording the previous value in the journal.
func (s *StorageSpace) Store(slot, value core.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.words[slot]
	s.journal = append(s.journal, journalEntry{slot: slot, prev: prev, existed: existed})

	if value.IsZero() {
		delete(s.words, slot)
		return
	}
	s.words[slot] = value
}

// Snapshot returns a marker for the current journal position.
func (s *StorageSpace) Snapshot() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.journal)
}

// RevertTo undoes every write made after the given snapshot, most recent
// first, restoring the space to its state at Snapshot time.
func (s *StorageSpace) RevertTo(snapshot int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot < 0 || snapshot > len(s.journal) {
		return
	}

	for i := len(s.journal) - 1; i >= snapshot; i-- {
		e := s.journal[i]
		if e.existed {
			s.words[e.slot] = e.prev
		} else {
			delete(s.words, e.slot)
		}
	}
	s.journal = s.journal[:snapshot]
}

// DiscardJournal drops journal history up to the current position. Called
// after an operation commits; reverting past a commit is never needed.
func (s *StorageSpace) DiscardJournal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = s.journal[:0]
}

// Len returns the number of non-zero slots, for inspection and tests.
func (s *StorageSpace) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
