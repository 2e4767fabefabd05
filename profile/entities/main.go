// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/kotei"
	"github.com/pkg/profile"
)

const (
	comp1Cid kotei.Cid = iota
	comp2Cid
	numCids
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		s := kotei.NewStorage(kotei.Config{MaxEntities: numEntities + 1, NumCids: int(numCids)}, nil)
		query := kotei.NewFilter[*comp1](s, comp1Cid)

		for i := 0; i < iters; i++ {
			for i := 0; i < numEntities; i++ {
				s.CreateWith(
					kotei.Attachment{Cid: comp1Cid, Component: &comp1{}},
					kotei.Attachment{Cid: comp2Cid, Component: &comp2{V: 1, W: 1}},
				)
			}
			query.Reset()
			for query.Next() {
				c1 := query.Get()
				c2 := kotei.GetOrZero[*comp2](s, comp2Cid, query.Entity())
				c1.V += c2.V
				c1.W += c2.W
				s.DestroyNow(query.Entity())
			}
		}
		s.Release()
	}
}
