// Package ihtcache implements a fixed-capacity, single-threaded, in-process
// key→value cache: an open-addressing hash table with linear probing, an
// aging-counter eviction policy approximating LRU, and an indexed item pool
// decoupled from the probe array so eviction never relocates surviving keys.
//
// The table never grows. Capacity is fixed at construction (or at the next
// Reconfigure) from a requested minimum capacity and a load factor. Callers
// must externally serialize all operations on a given *Cache; there is no
// internal locking.
package ihtcache
