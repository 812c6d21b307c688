package enricher

import (
	"context"
	"fmt"
	"sync"

	"github.com/akyairhashvil/leadenricher/internal/models"
)

func seqKeys() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("k%d", n)
	}
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []models.Notification
}

func (r *recordingNotifier) Notify(n models.Notification) {
	r.mu.Lock()
	r.got = append(r.got, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.got...)
}

type searchReply struct {
	articles []models.Article
	err      error
}

// gatedSearch blocks each term until a reply is sent on its gate.
type gatedSearch struct {
	started chan string
	gates   map[string]chan searchReply
}

func newGatedSearch(terms ...string) *gatedSearch {
	g := &gatedSearch{
		started: make(chan string, len(terms)),
		gates:   make(map[string]chan searchReply, len(terms)),
	}
	for _, term := range terms {
		g.gates[term] = make(chan searchReply, 1)
	}
	return g
}

func (g *gatedSearch) Search(ctx context.Context, term string) ([]models.Article, error) {
	g.started <- term
	reply := <-g.gates[term]
	return reply.articles, reply.err
}

type gatedLeads struct {
	started chan models.LeadData
	reply   chan error
}

func newGatedLeads() *gatedLeads {
	return &gatedLeads{started: make(chan models.LeadData, 4), reply: make(chan error, 4)}
}

func (g *gatedLeads) CreateLead(ctx context.Context, lead models.LeadData) error {
	g.started <- lead
	return <-g.reply
}
