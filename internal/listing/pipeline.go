package listing

import "sync"

// Results is what one pipeline run hands back to the consumer.
type Results struct {
	Visible       []FileEntry `json:"entries"`
	TotalCount    int         `json:"total_count"`
	FilteredCount int         `json:"filtered_count"`
	Page          int         `json:"page"`
	PageSize      int         `json:"page_size"`
	TotalPages    int         `json:"total_pages"`
	Warning       string      `json:"warning,omitempty"`
}

// Listener receives pipeline results. It is invoked serially from the
// pipeline's worker goroutine and must not block for long.
type Listener func(Results)

// Pipeline owns one filter/sort/page configuration and re-runs the full
// filter, sort and window chain on a worker goroutine whenever a parameter
// changes. Each change bumps a generation counter; a run whose generation
// has been superseded by the time it finishes is discarded, so the listener
// only ever observes results in last-writer-wins order.
type Pipeline struct {
	load     func() ([]FileEntry, error)
	listener Listener

	mu        sync.Mutex
	cond      *sync.Cond
	entries   []FileEntry
	warning   string
	criteria  FilterCriteria
	sortSpec  SortSpec
	pageIndex int
	pageSize  int
	gen       uint64
	pending   bool
	reload    bool
	closed    bool
	done      chan struct{}
}

type pipelineJob struct {
	gen       uint64
	entries   []FileEntry
	warning   string
	criteria  FilterCriteria
	sortSpec  SortSpec
	pageIndex int
	pageSize  int
	reload    bool
}

// NewPipeline starts the worker goroutine. load supplies the entry source
// on Refresh; listener receives every non-superseded result. Call Close to
// stop the worker.
func NewPipeline(load func() ([]FileEntry, error), listener Listener) *Pipeline {
	p := &Pipeline{
		load:      load,
		listener:  listener,
		sortSpec:  DefaultSortSpec(),
		pageIndex: 1,
		pageSize:  DefaultPageSize,
		done:      make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	go p.run()
	return p
}

// Refresh re-enumerates the entry source and re-runs the pipeline.
func (p *Pipeline) Refresh() {
	p.update(func() { p.reload = true })
}

// SetEntries replaces the cached source collection wholesale, for callers
// that already hold a list (a drop payload for example).
func (p *Pipeline) SetEntries(entries []FileEntry) {
	p.update(func() {
		p.entries = FromList(entries)
		p.warning = ""
	})
}

// SetCriteria re-runs the pipeline against the cached source collection.
func (p *Pipeline) SetCriteria(c FilterCriteria) {
	p.update(func() { p.criteria = c })
}

func (p *Pipeline) SetSortSpec(s SortSpec) {
	p.update(func() { p.sortSpec = s })
}

// SetPageSize ignores sizes below 1.
func (p *Pipeline) SetPageSize(n int) {
	if n < 1 {
		return
	}
	p.update(func() { p.pageSize = n })
}

// GoToPage requests a page; the run clamps it into the valid range.
func (p *Pipeline) GoToPage(page int) {
	p.update(func() { p.pageIndex = page })
}

// Close stops the worker. A queued run that has not started is dropped.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Signal()
	p.mu.Unlock()
	<-p.done
}

func (p *Pipeline) update(apply func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	apply()
	p.gen++
	p.pending = true
	p.cond.Signal()
}

func (p *Pipeline) run() {
	defer close(p.done)
	for {
		p.mu.Lock()
		for !p.pending && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		job := pipelineJob{
			gen:       p.gen,
			entries:   p.entries,
			warning:   p.warning,
			criteria:  p.criteria,
			sortSpec:  p.sortSpec,
			pageIndex: p.pageIndex,
			pageSize:  p.pageSize,
			reload:    p.reload,
		}
		p.pending = false
		p.reload = false
		p.mu.Unlock()

		if job.reload {
			entries, err := p.load()
			if err != nil {
				// Unavailable scope: empty result plus warning, not fatal.
				job.entries = nil
				job.warning = err.Error()
			} else {
				job.entries = entries
				job.warning = ""
			}
			p.mu.Lock()
			// Cache the load only if no update of any kind arrived while it
			// was in flight; a newer SetEntries must not be stomped.
			if p.gen == job.gen {
				p.entries = job.entries
				p.warning = job.warning
			}
			p.mu.Unlock()
		}

		res := runStages(job)

		p.mu.Lock()
		stale := job.gen < p.gen
		p.mu.Unlock()
		if !stale {
			p.listener(res)
		}
	}
}

func runStages(job pipelineJob) Results {
	filtered := Filter(job.entries, job.criteria)
	sorted := Sort(filtered, job.sortSpec)

	page := NewPageState(job.pageSize)
	page.SetTotalItems(len(sorted))
	page.GoToPage(job.pageIndex)
	visible := page.Slice(sorted)

	return Results{
		Visible:       visible,
		TotalCount:    len(job.entries),
		FilteredCount: len(sorted),
		Page:          page.PageIndex(),
		PageSize:      page.PageSize(),
		TotalPages:    page.TotalPages(),
		Warning:       job.warning,
	}
}
