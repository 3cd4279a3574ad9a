// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/businesshours"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/clinicsettings"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// ClinicSettingsQuery is the builder for querying ClinicSettings entities.
type ClinicSettingsQuery struct {
	config
	ctx               *QueryContext
	order             []clinicsettings.OrderOption
	inters            []Interceptor
	predicates        []predicate.ClinicSettings
	withBusinessHours *BusinessHoursQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ClinicSettingsQuery builder.
func (_q *ClinicSettingsQuery) Where(ps ...predicate.ClinicSettings) *ClinicSettingsQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ClinicSettingsQuery) Limit(limit int) *ClinicSettingsQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ClinicSettingsQuery) Offset(offset int) *ClinicSettingsQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ClinicSettingsQuery) Unique(unique bool) *ClinicSettingsQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ClinicSettingsQuery) Order(o ...clinicsettings.OrderOption) *ClinicSettingsQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBusinessHours chains the current query on the "business_hours" edge.
func (_q *ClinicSettingsQuery) QueryBusinessHours() *BusinessHoursQuery {
	query := (&BusinessHoursClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clinicsettings.Table, clinicsettings.FieldID, selector),
			sqlgraph.To(businesshours.Table, businesshours.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clinicsettings.BusinessHoursTable, clinicsettings.BusinessHoursColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ClinicSettings entity from the query.
// Returns a *NotFoundError when no ClinicSettings was found.
func (_q *ClinicSettingsQuery) First(ctx context.Context) (*ClinicSettings, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{clinicsettings.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ClinicSettingsQuery) FirstX(ctx context.Context) *ClinicSettings {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ClinicSettings ID from the query.
// Returns a *NotFoundError when no ClinicSettings ID was found.
func (_q *ClinicSettingsQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{clinicsettings.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ClinicSettingsQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ClinicSettings entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ClinicSettings entity is found.
// Returns a *NotFoundError when no ClinicSettings entities are found.
func (_q *ClinicSettingsQuery) Only(ctx context.Context) (*ClinicSettings, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{clinicsettings.Label}
	default:
		return nil, &NotSingularError{clinicsettings.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ClinicSettingsQuery) OnlyX(ctx context.Context) *ClinicSettings {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ClinicSettings ID in the query.
// Returns a *NotSingularError when more than one ClinicSettings ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ClinicSettingsQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{clinicsettings.Label}
	default:
		err = &NotSingularError{clinicsettings.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ClinicSettingsQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ClinicSettingsSlice.
func (_q *ClinicSettingsQuery) All(ctx context.Context) ([]*ClinicSettings, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ClinicSettings, *ClinicSettingsQuery]()
	return withInterceptors[[]*ClinicSettings](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ClinicSettingsQuery) AllX(ctx context.Context) []*ClinicSettings {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ClinicSettings IDs.
func (_q *ClinicSettingsQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(clinicsettings.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ClinicSettingsQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ClinicSettingsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ClinicSettingsQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ClinicSettingsQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ClinicSettingsQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ClinicSettingsQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ClinicSettingsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ClinicSettingsQuery) Clone() *ClinicSettingsQuery {
	if _q == nil {
		return nil
	}
	return &ClinicSettingsQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]clinicsettings.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.ClinicSettings{}, _q.predicates...),
		withBusinessHours: _q.withBusinessHours.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBusinessHours tells the query-builder to eager-load the nodes that are connected to
// the "business_hours" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClinicSettingsQuery) WithBusinessHours(opts ...func(*BusinessHoursQuery)) *ClinicSettingsQuery {
	query := (&BusinessHoursClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBusinessHours = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ClinicSettings.Query().
//		GroupBy(clinicsettings.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ClinicSettingsQuery) GroupBy(field string, fields ...string) *ClinicSettingsGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ClinicSettingsGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = clinicsettings.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ClinicSettings.Query().
//		Select(clinicsettings.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ClinicSettingsQuery) Select(fields ...string) *ClinicSettingsSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ClinicSettingsSelect{ClinicSettingsQuery: _q}
	sbuild.label = clinicsettings.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ClinicSettingsSelect configured with the given aggregations.
func (_q *ClinicSettingsQuery) Aggregate(fns ...AggregateFunc) *ClinicSettingsSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ClinicSettingsQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !clinicsettings.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *ClinicSettingsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ClinicSettings, error) {
	var (
		nodes       = []*ClinicSettings{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withBusinessHours != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ClinicSettings).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ClinicSettings{config: _q.config}
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
	if query := _q.withBusinessHours; query != nil {
		if err := _q.loadBusinessHours(ctx, query, nodes,
			func(n *ClinicSettings) { n.Edges.BusinessHours = []*BusinessHours{} },
			func(n *ClinicSettings, e *BusinessHours) { n.Edges.BusinessHours = append(n.Edges.BusinessHours, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ClinicSettingsQuery) loadBusinessHours(ctx context.Context, query *BusinessHoursQuery, nodes []*ClinicSettings, init func(*ClinicSettings), assign func(*ClinicSettings, *BusinessHours)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClinicSettings)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(businesshours.FieldSettingsID)
	}
	query.Where(predicate.BusinessHours(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clinicsettings.BusinessHoursColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SettingsID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "settings_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ClinicSettingsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ClinicSettingsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(clinicsettings.Table, clinicsettings.Columns, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicsettings.FieldID)
		for i := range fields {
			if fields[i] != clinicsettings.FieldID {
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

func (_q *ClinicSettingsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(clinicsettings.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = clinicsettings.Columns
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

// ClinicSettingsGroupBy is the group-by builder for ClinicSettings entities.
type ClinicSettingsGroupBy struct {
	selector
	build *ClinicSettingsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ClinicSettingsGroupBy) Aggregate(fns ...AggregateFunc) *ClinicSettingsGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ClinicSettingsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClinicSettingsQuery, *ClinicSettingsGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ClinicSettingsGroupBy) sqlScan(ctx context.Context, root *ClinicSettingsQuery, v any) error {
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

// ClinicSettingsSelect is the builder for selecting fields of ClinicSettings entities.
type ClinicSettingsSelect struct {
	*ClinicSettingsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ClinicSettingsSelect) Aggregate(fns ...AggregateFunc) *ClinicSettingsSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ClinicSettingsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClinicSettingsQuery, *ClinicSettingsSelect](ctx, _s.ClinicSettingsQuery, _s, _s.inters, v)
}

func (_s *ClinicSettingsSelect) sqlScan(ctx context.Context, root *ClinicSettingsQuery, v any) error {
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
