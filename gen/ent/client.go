// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/advisorhq/proposal-pipeline/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisJob is the client for interacting with the AnalysisJob builders.
	AnalysisJob *AnalysisJobClient
	// Illustration is the client for interacting with the Illustration builders.
	Illustration *IllustrationClient
	// InsuranceProduct is the client for interacting with the InsuranceProduct builders.
	InsuranceProduct *InsuranceProductClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisJob = NewAnalysisJobClient(c.config)
	c.Illustration = NewIllustrationClient(c.config)
	c.InsuranceProduct = NewInsuranceProductClient(c.config)
	c.Proposal = NewProposalClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AnalysisJob:      NewAnalysisJobClient(cfg),
		Illustration:     NewIllustrationClient(cfg),
		InsuranceProduct: NewInsuranceProductClient(cfg),
		Proposal:         NewProposalClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AnalysisJob:      NewAnalysisJobClient(cfg),
		Illustration:     NewIllustrationClient(cfg),
		InsuranceProduct: NewInsuranceProductClient(cfg),
		Proposal:         NewProposalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisJob.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnalysisJob.Use(hooks...)
	c.Illustration.Use(hooks...)
	c.InsuranceProduct.Use(hooks...)
	c.Proposal.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisJob.Intercept(interceptors...)
	c.Illustration.Intercept(interceptors...)
	c.InsuranceProduct.Intercept(interceptors...)
	c.Proposal.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisJobMutation:
		return c.AnalysisJob.mutate(ctx, m)
	case *IllustrationMutation:
		return c.Illustration.mutate(ctx, m)
	case *InsuranceProductMutation:
		return c.InsuranceProduct.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisJobClient is a client for the AnalysisJob schema.
type AnalysisJobClient struct {
	config
}

// NewAnalysisJobClient returns a client for the AnalysisJob from the given config.
func NewAnalysisJobClient(c config) *AnalysisJobClient {
	return &AnalysisJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisjob.Hooks(f(g(h())))`.
func (c *AnalysisJobClient) Use(hooks ...Hook) {
	c.hooks.AnalysisJob = append(c.hooks.AnalysisJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisjob.Intercept(f(g(h())))`.
func (c *AnalysisJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisJob = append(c.inters.AnalysisJob, interceptors...)
}

// Create returns a builder for creating a AnalysisJob entity.
func (c *AnalysisJobClient) Create() *AnalysisJobCreate {
	mutation := newAnalysisJobMutation(c.config, OpCreate)
	return &AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisJob entities.
func (c *AnalysisJobClient) CreateBulk(builders ...*AnalysisJobCreate) *AnalysisJobCreateBulk {
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisJobClient) MapCreateBulk(slice any, setFunc func(*AnalysisJobCreate, int)) *AnalysisJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisJobCreateBulk{err: fmt.Errorf("calling to AnalysisJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisJob.
func (c *AnalysisJobClient) Update() *AnalysisJobUpdate {
	mutation := newAnalysisJobMutation(c.config, OpUpdate)
	return &AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisJobClient) UpdateOne(_m *AnalysisJob) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJob(_m))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisJobClient) UpdateOneID(id uuid.UUID) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJobID(id))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisJob.
func (c *AnalysisJobClient) Delete() *AnalysisJobDelete {
	mutation := newAnalysisJobMutation(c.config, OpDelete)
	return &AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisJobClient) DeleteOne(_m *AnalysisJob) *AnalysisJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisJobClient) DeleteOneID(id uuid.UUID) *AnalysisJobDeleteOne {
	builder := c.Delete().Where(analysisjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisJobDeleteOne{builder}
}

// Query returns a query builder for AnalysisJob.
func (c *AnalysisJobClient) Query() *AnalysisJobQuery {
	return &AnalysisJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisJob},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisJob entity by its id.
func (c *AnalysisJobClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisJob, error) {
	return c.Query().Where(analysisjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisJobClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryProposal(_m *AnalysisJob) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisjob.ProposalTable, analysisjob.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisJobClient) Hooks() []Hook {
	return c.hooks.AnalysisJob
}

// Interceptors returns the client interceptors.
func (c *AnalysisJobClient) Interceptors() []Interceptor {
	return c.inters.AnalysisJob
}

func (c *AnalysisJobClient) mutate(ctx context.Context, m *AnalysisJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisJob mutation op: %q", m.Op())
	}
}

// IllustrationClient is a client for the Illustration schema.
type IllustrationClient struct {
	config
}

// NewIllustrationClient returns a client for the Illustration from the given config.
func NewIllustrationClient(c config) *IllustrationClient {
	return &IllustrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `illustration.Hooks(f(g(h())))`.
func (c *IllustrationClient) Use(hooks ...Hook) {
	c.hooks.Illustration = append(c.hooks.Illustration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `illustration.Intercept(f(g(h())))`.
func (c *IllustrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Illustration = append(c.inters.Illustration, interceptors...)
}

// Create returns a builder for creating a Illustration entity.
func (c *IllustrationClient) Create() *IllustrationCreate {
	mutation := newIllustrationMutation(c.config, OpCreate)
	return &IllustrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Illustration entities.
func (c *IllustrationClient) CreateBulk(builders ...*IllustrationCreate) *IllustrationCreateBulk {
	return &IllustrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IllustrationClient) MapCreateBulk(slice any, setFunc func(*IllustrationCreate, int)) *IllustrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IllustrationCreateBulk{err: fmt.Errorf("calling to IllustrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IllustrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IllustrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Illustration.
func (c *IllustrationClient) Update() *IllustrationUpdate {
	mutation := newIllustrationMutation(c.config, OpUpdate)
	return &IllustrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IllustrationClient) UpdateOne(_m *Illustration) *IllustrationUpdateOne {
	mutation := newIllustrationMutation(c.config, OpUpdateOne, withIllustration(_m))
	return &IllustrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IllustrationClient) UpdateOneID(id uuid.UUID) *IllustrationUpdateOne {
	mutation := newIllustrationMutation(c.config, OpUpdateOne, withIllustrationID(id))
	return &IllustrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Illustration.
func (c *IllustrationClient) Delete() *IllustrationDelete {
	mutation := newIllustrationMutation(c.config, OpDelete)
	return &IllustrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IllustrationClient) DeleteOne(_m *Illustration) *IllustrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IllustrationClient) DeleteOneID(id uuid.UUID) *IllustrationDeleteOne {
	builder := c.Delete().Where(illustration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IllustrationDeleteOne{builder}
}

// Query returns a query builder for Illustration.
func (c *IllustrationClient) Query() *IllustrationQuery {
	return &IllustrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIllustration},
		inters: c.Interceptors(),
	}
}

// Get returns a Illustration entity by its id.
func (c *IllustrationClient) Get(ctx context.Context, id uuid.UUID) (*Illustration, error) {
	return c.Query().Where(illustration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IllustrationClient) GetX(ctx context.Context, id uuid.UUID) *Illustration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a Illustration.
func (c *IllustrationClient) QueryProposal(_m *Illustration) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(illustration.Table, illustration.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, illustration.ProposalTable, illustration.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySelectedProduct queries the selected_product edge of a Illustration.
func (c *IllustrationClient) QuerySelectedProduct(_m *Illustration) *InsuranceProductQuery {
	query := (&InsuranceProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(illustration.Table, illustration.FieldID, id),
			sqlgraph.To(insuranceproduct.Table, insuranceproduct.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, illustration.SelectedProductTable, illustration.SelectedProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IllustrationClient) Hooks() []Hook {
	return c.hooks.Illustration
}

// Interceptors returns the client interceptors.
func (c *IllustrationClient) Interceptors() []Interceptor {
	return c.inters.Illustration
}

func (c *IllustrationClient) mutate(ctx context.Context, m *IllustrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IllustrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IllustrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IllustrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IllustrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Illustration mutation op: %q", m.Op())
	}
}

// InsuranceProductClient is a client for the InsuranceProduct schema.
type InsuranceProductClient struct {
	config
}

// NewInsuranceProductClient returns a client for the InsuranceProduct from the given config.
func NewInsuranceProductClient(c config) *InsuranceProductClient {
	return &InsuranceProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insuranceproduct.Hooks(f(g(h())))`.
func (c *InsuranceProductClient) Use(hooks ...Hook) {
	c.hooks.InsuranceProduct = append(c.hooks.InsuranceProduct, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insuranceproduct.Intercept(f(g(h())))`.
func (c *InsuranceProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.InsuranceProduct = append(c.inters.InsuranceProduct, interceptors...)
}

// Create returns a builder for creating a InsuranceProduct entity.
func (c *InsuranceProductClient) Create() *InsuranceProductCreate {
	mutation := newInsuranceProductMutation(c.config, OpCreate)
	return &InsuranceProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InsuranceProduct entities.
func (c *InsuranceProductClient) CreateBulk(builders ...*InsuranceProductCreate) *InsuranceProductCreateBulk {
	return &InsuranceProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsuranceProductClient) MapCreateBulk(slice any, setFunc func(*InsuranceProductCreate, int)) *InsuranceProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsuranceProductCreateBulk{err: fmt.Errorf("calling to InsuranceProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsuranceProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsuranceProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InsuranceProduct.
func (c *InsuranceProductClient) Update() *InsuranceProductUpdate {
	mutation := newInsuranceProductMutation(c.config, OpUpdate)
	return &InsuranceProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsuranceProductClient) UpdateOne(_m *InsuranceProduct) *InsuranceProductUpdateOne {
	mutation := newInsuranceProductMutation(c.config, OpUpdateOne, withInsuranceProduct(_m))
	return &InsuranceProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsuranceProductClient) UpdateOneID(id uuid.UUID) *InsuranceProductUpdateOne {
	mutation := newInsuranceProductMutation(c.config, OpUpdateOne, withInsuranceProductID(id))
	return &InsuranceProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InsuranceProduct.
func (c *InsuranceProductClient) Delete() *InsuranceProductDelete {
	mutation := newInsuranceProductMutation(c.config, OpDelete)
	return &InsuranceProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsuranceProductClient) DeleteOne(_m *InsuranceProduct) *InsuranceProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsuranceProductClient) DeleteOneID(id uuid.UUID) *InsuranceProductDeleteOne {
	builder := c.Delete().Where(insuranceproduct.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsuranceProductDeleteOne{builder}
}

// Query returns a query builder for InsuranceProduct.
func (c *InsuranceProductClient) Query() *InsuranceProductQuery {
	return &InsuranceProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsuranceProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a InsuranceProduct entity by its id.
func (c *InsuranceProductClient) Get(ctx context.Context, id uuid.UUID) (*InsuranceProduct, error) {
	return c.Query().Where(insuranceproduct.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsuranceProductClient) GetX(ctx context.Context, id uuid.UUID) *InsuranceProduct {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySelections queries the selections edge of a InsuranceProduct.
func (c *InsuranceProductClient) QuerySelections(_m *InsuranceProduct) *IllustrationQuery {
	query := (&IllustrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insuranceproduct.Table, insuranceproduct.FieldID, id),
			sqlgraph.To(illustration.Table, illustration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insuranceproduct.SelectionsTable, insuranceproduct.SelectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsuranceProductClient) Hooks() []Hook {
	return c.hooks.InsuranceProduct
}

// Interceptors returns the client interceptors.
func (c *InsuranceProductClient) Interceptors() []Interceptor {
	return c.inters.InsuranceProduct
}

func (c *InsuranceProductClient) mutate(ctx context.Context, m *InsuranceProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsuranceProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsuranceProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsuranceProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsuranceProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InsuranceProduct mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id uuid.UUID) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id uuid.UUID) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id uuid.UUID) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id uuid.UUID) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIllustrations queries the illustrations edge of a Proposal.
func (c *ProposalClient) QueryIllustrations(_m *Proposal) *IllustrationQuery {
	query := (&IllustrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(illustration.Table, illustration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.IllustrationsTable, proposal.IllustrationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalysisJobs queries the analysis_jobs edge of a Proposal.
func (c *ProposalClient) QueryAnalysisJobs(_m *Proposal) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.AnalysisJobsTable, proposal.AnalysisJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisJob, Illustration, InsuranceProduct, Proposal []ent.Hook
	}
	inters struct {
		AnalysisJob, Illustration, InsuranceProduct, Proposal []ent.Interceptor
	}
)
