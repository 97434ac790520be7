package intake

import (
	"context"
	"sync"
	"time"

	"tasmeem/internal/utils"

	"github.com/sirupsen/logrus"
)

type draft struct {
	mu      sync.Mutex
	wizard  *Wizard
	touched time.Time
	retired bool
}

// Drafts holds the in-progress wizards of every visitor, in memory only.
// Drafts idle for longer than the TTL are discarded along with their staged
// blobs.
type Drafts struct {
	logger     *logrus.Logger
	submitter  Submitter
	blobs      BlobStore
	blobPrefix string
	ttl        time.Duration
	now        func() time.Time

	mu     sync.Mutex
	drafts map[string]*draft

	stop chan struct{}
	done chan struct{}
}

func NewDrafts(logger *logrus.Logger, submitter Submitter, blobs BlobStore, blobPrefix string, ttl time.Duration) *Drafts {
	return &Drafts{
		logger:     logger,
		submitter:  submitter,
		blobs:      blobs,
		blobPrefix: blobPrefix,
		ttl:        ttl,
		now:        time.Now,
		drafts:     make(map[string]*draft),
	}
}

// Start launches the sweeper. Close stops it.
func (d *Drafts) Start(interval time.Duration) {
	d.stop = make(chan struct{})
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-d.stop:
				return
			case <-ticker.C:
				d.Sweep(context.Background())
			}
		}
	}()
}

func (d *Drafts) Close() {
	if d.stop == nil {
		return
	}
	close(d.stop)
	<-d.done
	d.stop = nil
}

// With runs fn against the draft for id while holding its lock. A missing,
// empty or retired id starts a new draft; the id in use is returned either
// way. A draft whose wizard completed its submission during fn is retired
// and its staged blobs removed.
func (d *Drafts) With(ctx context.Context, id string, fn func(w *Wizard) error) (string, error) {
	for {
		dr := d.lookup(id)
		if dr == nil {
			id = utils.NanoID()
			dr = &draft{wizard: NewWizard(id, d.submitter, d.blobs, d.blobPrefix), touched: d.now()}

			d.mu.Lock()
			d.drafts[id] = dr
			d.mu.Unlock()
		}

		dr.mu.Lock()
		if dr.retired {
			dr.mu.Unlock()
			id = ""
			continue
		}

		dr.touched = d.now()
		err := fn(dr.wizard)

		if dr.wizard.Completed {
			d.retire(ctx, id, dr)
		}
		dr.mu.Unlock()

		return id, err
	}
}

// retire must be called with dr.mu held.
func (d *Drafts) retire(ctx context.Context, id string, dr *draft) {
	dr.retired = true

	d.mu.Lock()
	if d.drafts[id] == dr {
		delete(d.drafts, id)
	}
	d.mu.Unlock()

	if err := dr.wizard.Discard(ctx); err != nil {
		d.logger.WithError(err).WithField("draft_id", id).Warn("failed to discard staged blobs")
	}
}

// Exists reports whether a draft for id is held.
func (d *Drafts) Exists(id string) bool {
	return d.lookup(id) != nil
}

func (d *Drafts) lookup(id string) *draft {
	if id == "" {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drafts[id]
}

// Delete forgets the draft and removes its staged blobs.
func (d *Drafts) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	dr, ok := d.drafts[id]
	delete(d.drafts, id)
	d.mu.Unlock()

	if !ok {
		return nil
	}

	dr.mu.Lock()
	defer dr.mu.Unlock()

	dr.retired = true
	return dr.wizard.Discard(ctx)
}

// Sweep deletes drafts that have been idle longer than the TTL.
func (d *Drafts) Sweep(ctx context.Context) int {
	cutoff := d.now().Add(-d.ttl)

	d.mu.Lock()
	snapshot := make(map[string]*draft, len(d.drafts))
	for id, dr := range d.drafts {
		snapshot[id] = dr
	}
	d.mu.Unlock()

	expired := 0
	for id, dr := range snapshot {
		dr.mu.Lock()
		if !dr.retired && dr.touched.Before(cutoff) {
			d.retire(ctx, id, dr)
			expired++
		}
		dr.mu.Unlock()
	}

	if expired > 0 {
		d.logger.WithField("count", expired).Debug("swept expired intake drafts")
	}

	return expired
}

// Len is the number of drafts held.
func (d *Drafts) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.drafts)
}
