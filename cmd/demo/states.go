package main

import (
	"github.com/comalice/statestack"
	"github.com/comalice/statestack/datastore"
)

const (
	keyScore  = "score"
	keyPauses = "pauses"
)

// titleState shows for a fixed number of ticks, then replaces itself with play.
type titleState struct {
	statestack.Base
	next   statestack.State
	frames int
	ticks  int
}

func (s *titleState) Name() string { return "title" }

func (s *titleState) Start() { s.ticks = 0 }

func (s *titleState) Update() {
	s.ticks++
	if s.ticks < s.frames {
		return
	}
	if _, err := s.Machine().ReplaceState(s.next); err != nil {
		panic(err)
	}
}

// playState scores a point every tick and pushes pause at a fixed interval.
type playState struct {
	statestack.Base
	store *datastore.Store
	pause statestack.State
	every int
	ticks int
}

func (s *playState) Name() string { return "play" }

func (s *playState) Load() { s.store.Add(keyScore, 0) }

func (s *playState) Update() {
	s.ticks++
	score := datastore.GetOr(s.store, keyScore, 0)
	s.store.Update(keyScore, score+1)

	if s.ticks%s.every == 0 {
		if err := s.Machine().PushState(s.pause); err != nil {
			panic(err)
		}
	}
}

func (s *playState) Unload() { s.store.Remove(keyScore) }

// pauseState covers play for a fixed number of ticks and then pops itself.
type pauseState struct {
	statestack.Base
	store  *datastore.Store
	frames int
	ticks  int
}

func (s *pauseState) Name() string { return "pause" }

func (s *pauseState) Start() {
	s.ticks = 0
	if !s.store.Add(keyPauses, 1) {
		s.store.Update(keyPauses, datastore.GetOr(s.store, keyPauses, 0)+1)
	}
}

func (s *pauseState) Update() {
	s.ticks++
	if s.ticks >= s.frames {
		s.Machine().PopState()
	}
}
