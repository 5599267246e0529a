package models

import (
	"sync"
)

// PartitionStore holds the partitions hosted by the server, keyed by id.
type PartitionStore struct {
	mutex      sync.RWMutex
	partitions map[string]*Partition
}

func (s *PartitionStore) Add(p *Partition) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.partitions == nil {
		s.partitions = make(map[string]*Partition)
	}
	s.partitions[p.ID] = p

	instrumentIncreasePartitionGauge()
	instrumentCountPartition()
}

func (s *PartitionStore) Get(id string) (*Partition, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, ok := s.partitions[id]
	return p, ok
}

func (s *PartitionStore) Delete(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.partitions[id]
	if ok {
		delete(s.partitions, id)
		instrumentDecreasePartitionGauge()
	}
	return ok
}

func (s *PartitionStore) List() []*Partition {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	partitions := make([]*Partition, 0, len(s.partitions))
	for _, p := range s.partitions {
		partitions = append(partitions, p)
	}
	return partitions
}

func (s *PartitionStore) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.partitions)
}
