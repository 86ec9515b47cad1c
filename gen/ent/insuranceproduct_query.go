// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// InsuranceProductQuery is the builder for querying InsuranceProduct entities.
type InsuranceProductQuery struct {
	config
	ctx            *QueryContext
	order          []insuranceproduct.OrderOption
	inters         []Interceptor
	predicates     []predicate.InsuranceProduct
	withSelections *IllustrationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InsuranceProductQuery builder.
func (_q *InsuranceProductQuery) Where(ps ...predicate.InsuranceProduct) *InsuranceProductQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InsuranceProductQuery) Limit(limit int) *InsuranceProductQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InsuranceProductQuery) Offset(offset int) *InsuranceProductQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InsuranceProductQuery) Unique(unique bool) *InsuranceProductQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InsuranceProductQuery) Order(o ...insuranceproduct.OrderOption) *InsuranceProductQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySelections chains the current query on the "selections" edge.
func (_q *InsuranceProductQuery) QuerySelections() *IllustrationQuery {
	query := (&IllustrationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insuranceproduct.Table, insuranceproduct.FieldID, selector),
			sqlgraph.To(illustration.Table, illustration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insuranceproduct.SelectionsTable, insuranceproduct.SelectionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InsuranceProduct entity from the query.
// Returns a *NotFoundError when no InsuranceProduct was found.
func (_q *InsuranceProductQuery) First(ctx context.Context) (*InsuranceProduct, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{insuranceproduct.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InsuranceProductQuery) FirstX(ctx context.Context) *InsuranceProduct {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InsuranceProduct ID from the query.
// Returns a *NotFoundError when no InsuranceProduct ID was found.
func (_q *InsuranceProductQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{insuranceproduct.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InsuranceProductQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InsuranceProduct entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InsuranceProduct entity is found.
// Returns a *NotFoundError when no InsuranceProduct entities are found.
func (_q *InsuranceProductQuery) Only(ctx context.Context) (*InsuranceProduct, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{insuranceproduct.Label}
	default:
		return nil, &NotSingularError{insuranceproduct.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InsuranceProductQuery) OnlyX(ctx context.Context) *InsuranceProduct {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InsuranceProduct ID in the query.
// Returns a *NotSingularError when more than one InsuranceProduct ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InsuranceProductQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{insuranceproduct.Label}
	default:
		err = &NotSingularError{insuranceproduct.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InsuranceProductQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InsuranceProducts.
func (_q *InsuranceProductQuery) All(ctx context.Context) ([]*InsuranceProduct, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InsuranceProduct, *InsuranceProductQuery]()
	return withInterceptors[[]*InsuranceProduct](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InsuranceProductQuery) AllX(ctx context.Context) []*InsuranceProduct {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InsuranceProduct IDs.
func (_q *InsuranceProductQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(insuranceproduct.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InsuranceProductQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InsuranceProductQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InsuranceProductQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InsuranceProductQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InsuranceProductQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InsuranceProductQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InsuranceProductQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InsuranceProductQuery) Clone() *InsuranceProductQuery {
	if _q == nil {
		return nil
	}
	return &InsuranceProductQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]insuranceproduct.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.InsuranceProduct{}, _q.predicates...),
		withSelections: _q.withSelections.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSelections tells the query-builder to eager-load the nodes that are connected to
// the "selections" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsuranceProductQuery) WithSelections(opts ...func(*IllustrationQuery)) *InsuranceProductQuery {
	query := (&IllustrationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSelections = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InsuranceProduct.Query().
//		GroupBy(insuranceproduct.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InsuranceProductQuery) GroupBy(field string, fields ...string) *InsuranceProductGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InsuranceProductGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = insuranceproduct.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.InsuranceProduct.Query().
//		Select(insuranceproduct.FieldName).
//		Scan(ctx, &v)
func (_q *InsuranceProductQuery) Select(fields ...string) *InsuranceProductSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InsuranceProductSelect{InsuranceProductQuery: _q}
	sbuild.label = insuranceproduct.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InsuranceProductSelect configured with the given aggregations.
func (_q *InsuranceProductQuery) Aggregate(fns ...AggregateFunc) *InsuranceProductSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InsuranceProductQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !insuranceproduct.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InsuranceProductQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InsuranceProduct, error) {
	var (
		nodes       = []*InsuranceProduct{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSelections != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InsuranceProduct).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InsuranceProduct{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSelections; query != nil {
		if err := _q.loadSelections(ctx, query, nodes,
			func(n *InsuranceProduct) { n.Edges.Selections = []*Illustration{} },
			func(n *InsuranceProduct, e *Illustration) { n.Edges.Selections = append(n.Edges.Selections, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InsuranceProductQuery) loadSelections(ctx context.Context, query *IllustrationQuery, nodes []*InsuranceProduct, init func(*InsuranceProduct), assign func(*InsuranceProduct, *Illustration)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InsuranceProduct)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(illustration.FieldSelectedInsuranceID)
	}
	query.Where(predicate.Illustration(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(insuranceproduct.SelectionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SelectedInsuranceID
		if fk == nil {
			return fmt.Errorf(`foreign-key "selected_insurance_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "selected_insurance_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InsuranceProductQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InsuranceProductQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(insuranceproduct.Table, insuranceproduct.Columns, sqlgraph.NewFieldSpec(insuranceproduct.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insuranceproduct.FieldID)
		for i := range fields {
			if fields[i] != insuranceproduct.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InsuranceProductQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(insuranceproduct.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = insuranceproduct.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InsuranceProductGroupBy is the group-by builder for InsuranceProduct entities.
type InsuranceProductGroupBy struct {
	selector
	build *InsuranceProductQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InsuranceProductGroupBy) Aggregate(fns ...AggregateFunc) *InsuranceProductGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InsuranceProductGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsuranceProductQuery, *InsuranceProductGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InsuranceProductGroupBy) sqlScan(ctx context.Context, root *InsuranceProductQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InsuranceProductSelect is the builder for selecting fields of InsuranceProduct entities.
type InsuranceProductSelect struct {
	*InsuranceProductQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InsuranceProductSelect) Aggregate(fns ...AggregateFunc) *InsuranceProductSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InsuranceProductSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsuranceProductQuery, *InsuranceProductSelect](ctx, _s.InsuranceProductQuery, _s, _s.inters, v)
}

func (_s *InsuranceProductSelect) sqlScan(ctx context.Context, root *InsuranceProductQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
