package controller

import (
	"context"
	"sync"
	"time"

	"taskdeck/internal/cache"
	"taskdeck/internal/domain"
	"taskdeck/internal/errors"
	"taskdeck/internal/gateway"
	"taskdeck/internal/logging"
)

const defaultPageSize = 50

// Controller orchestrates the task list: it owns the session cache, runs
// every intent against the remote gateway, mirrors successful mutations
// into the cache and derives views for its listeners.
//
// Intents are serialized: the mutex is held across the remote call, so two
// in-flight intents can never interleave cache mutations. The controller
// performs no retries and no validation; remote failures surface once,
// immediately, as a Failed state and an error return.
type Controller struct {
	mu        sync.Mutex
	gw        gateway.TaskGateway
	cache     *cache.TaskCache
	listeners []Listener
	view      *domain.View
	pageSize  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the page size passed through to the gateway.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a Controller over the given gateway with an empty cache.
func New(gw gateway.TaskGateway, opts ...Option) *Controller {
	c := &Controller{
		gw:       gw,
		cache:    cache.New(),
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers a listener. Listeners are invoked synchronously in
// subscription order while the intent holds the controller lock.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *Controller) emit(s State) {
	for _, l := range c.listeners {
		l(s)
	}
}

// fail converts any gateway error into a single Failed state.
func (c *Controller) fail(intent string, err error) {
	intentCount.WithLabelValues(intent, "error").Inc()
	logging.Debugf("controller: %s failed: %v\n", intent, err)
	c.emit(Failed{Message: errors.GetUserMessage(err)})
}

// publishFullView derives and emits a view where the filtered subset
// equals the full cache and no filter or search criteria are active.
func (c *Controller) publishFullView() {
	view := domain.View{
		Full:     c.cache.All(),
		Filtered: c.cache.All(),
	}
	c.view = &view
	c.emit(Loaded{View: view})
}

// publishView records and emits an explicitly derived view.
func (c *Controller) publishView(view domain.View) {
	c.view = &view
	c.emit(Loaded{View: view})
}

// Load fetches the full task list and replaces the cache wholesale. On
// failure the cache keeps its stale-but-present contents.
func (c *Controller) Load(ctx context.Context) error {
	return c.load(ctx, "load", true)
}

// Refresh is Load without the intermediate Loading state, for background
// refreshes that should not flicker.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.load(ctx, "refresh", false)
}

func (c *Controller) load(ctx context.Context, intent string, announce bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if announce {
		c.emit(Loading{})
	}

	start := time.Now()
	tasks, err := c.gw.FetchAll(ctx, gateway.ListOptions{Page: 1, PageSize: c.pageSize})
	remoteCallDuration.WithLabelValues(intent).Observe(time.Since(start).Seconds())
	if err != nil {
		c.fail(intent, err)
		return err
	}

	c.cache.ReplaceAll(tasks)
	c.publishFullView()
	intentCount.WithLabelValues(intent, "success").Inc()
	return nil
}

// Create creates a task remotely and appends the server-assigned record
// to the cache. Field validation is a UI concern and happens before the
// intent is issued.
func (c *Controller) Create(ctx context.Context, in gateway.CreateTaskInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	task, err := c.gw.Create(ctx, in)
	remoteCallDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())
	if err != nil {
		c.fail("create", err)
		return err
	}

	c.cache.Upsert(*task)
	c.acknowledge("create", "task created")
	return nil
}

// Update applies a partial update remotely and mirrors the replacement
// record into the cache. An identifier unexpectedly absent from the cache
// is inserted rather than rejected.
func (c *Controller) Update(ctx context.Context, id string, in gateway.UpdateTaskInput) error {
	return c.update(ctx, id, in, "update", "task updated")
}

// UpdateStatus is Update with only the status field populated.
func (c *Controller) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return c.update(ctx, id, gateway.UpdateTaskInput{Status: &status}, "update_status", "task status updated")
}

func (c *Controller) update(ctx context.Context, id string, in gateway.UpdateTaskInput, intent, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	task, err := c.gw.Update(ctx, id, in)
	remoteCallDuration.WithLabelValues(intent).Observe(time.Since(start).Seconds())
	if err != nil {
		c.fail(intent, err)
		return err
	}

	c.cache.Upsert(*task)
	c.acknowledge(intent, message)
	return nil
}

// Delete removes a task remotely, then from the cache. The remote delete
// is authoritative: nothing is removed locally before confirmation.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	err := c.gw.Delete(ctx, id)
	remoteCallDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		c.fail("delete", err)
		return err
	}

	c.cache.Remove(id)
	c.acknowledge("delete", "task deleted")
	return nil
}

// acknowledge emits the OperationDone/Loaded pair for a successful
// mutation. Active filters and search are cleared: after any change the
// full list is shown.
func (c *Controller) acknowledge(intent, message string) {
	c.emit(OperationDone{Message: message})
	c.publishFullView()
	intentCount.WithLabelValues(intent, "success").Inc()
}

// Search narrows the view with a server-side free-text search. An empty
// query resets the filtered subset to the full cache. Search has no local
// fallback: full-text search is not reproducible client-side. The intent
// is ignored until a view exists.
func (c *Controller) Search(ctx context.Context, query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == nil {
		return nil
	}

	if query == "" {
		c.publishView(domain.View{
			Full:     c.cache.All(),
			Filtered: c.cache.All(),
		})
		intentCount.WithLabelValues("search", "success").Inc()
		return nil
	}

	start := time.Now()
	result, err := c.gw.Search(ctx, query, 1, c.pageSize)
	remoteCallDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	if err != nil {
		c.fail("search", err)
		return err
	}

	c.publishView(domain.View{
		Full:        c.cache.All(),
		Filtered:    result,
		SearchQuery: query,
	})
	intentCount.WithLabelValues("search", "success").Inc()
	return nil
}

// Filter narrows the view by status and/or priority, each independently
// optional. The remote filter is attempted first; on any gateway failure
// the filter falls back to a local conjunctive predicate over the cache.
// The fallback never raises, trading accuracy for availability. The
// intent is ignored until a view exists.
func (c *Controller) Filter(ctx context.Context, status *domain.Status, priority *domain.Priority) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == nil {
		return nil
	}

	start := time.Now()
	result, err := c.gw.FetchAll(ctx, gateway.ListOptions{
		Status:   status,
		Priority: priority,
		Page:     1,
		PageSize: c.pageSize,
	})
	remoteCallDuration.WithLabelValues("filter").Observe(time.Since(start).Seconds())
	if err != nil {
		filterFallbackCount.Inc()
		logging.Debugf("controller: remote filter failed, using local fallback: %v\n", err)
		result = filterLocal(c.cache.All(), status, priority)
	}

	c.publishView(domain.View{
		Full:           c.cache.All(),
		Filtered:       result,
		StatusFilter:   status,
		PriorityFilter: priority,
	})
	intentCount.WithLabelValues("filter", "success").Inc()
	return nil
}

// filterLocal keeps tasks matching the status (if given) AND the priority
// (if given).
func filterLocal(tasks []domain.Task, status *domain.Status, priority *domain.Priority) []domain.Task {
	var out []domain.Task
	for _, task := range tasks {
		if status != nil && task.Status != *status {
			continue
		}
		if priority != nil && task.Priority != *priority {
			continue
		}
		out = append(out, task)
	}
	return out
}

// GetByID returns the cached task with the given identifier, if present.
func (c *Controller) GetByID(id string) (domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Find(id)
}

// GetAll returns a copy of the cached task list.
func (c *Controller) GetAll() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.All()
}

// GetByStatus returns the cached tasks with the given status, in cache order.
func (c *Controller) GetByStatus(status domain.Status) []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.ByStatus(status)
}

// View returns the last published view, if any.
func (c *Controller) View() (domain.View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		return domain.View{}, false
	}
	return *c.view, true
}
