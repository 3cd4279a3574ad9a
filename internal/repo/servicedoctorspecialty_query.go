// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/doctor"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/service"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/servicedoctorspecialty"
)

// ServiceDoctorSpecialtyQuery is the builder for querying ServiceDoctorSpecialty entities.
type ServiceDoctorSpecialtyQuery struct {
	config
	ctx         *QueryContext
	order       []servicedoctorspecialty.OrderOption
	inters      []Interceptor
	predicates  []predicate.ServiceDoctorSpecialty
	withService *ServiceQuery
	withDoctor  *DoctorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ServiceDoctorSpecialtyQuery builder.
func (_q *ServiceDoctorSpecialtyQuery) Where(ps ...predicate.ServiceDoctorSpecialty) *ServiceDoctorSpecialtyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ServiceDoctorSpecialtyQuery) Limit(limit int) *ServiceDoctorSpecialtyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ServiceDoctorSpecialtyQuery) Offset(offset int) *ServiceDoctorSpecialtyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ServiceDoctorSpecialtyQuery) Unique(unique bool) *ServiceDoctorSpecialtyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ServiceDoctorSpecialtyQuery) Order(o ...servicedoctorspecialty.OrderOption) *ServiceDoctorSpecialtyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryService chains the current query on the "service" edge.
func (_q *ServiceDoctorSpecialtyQuery) QueryService() *ServiceQuery {
	query := (&ServiceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(servicedoctorspecialty.Table, servicedoctorspecialty.FieldID, selector),
			sqlgraph.To(service.Table, service.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servicedoctorspecialty.ServiceTable, servicedoctorspecialty.ServiceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDoctor chains the current query on the "doctor" edge.
func (_q *ServiceDoctorSpecialtyQuery) QueryDoctor() *DoctorQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(servicedoctorspecialty.Table, servicedoctorspecialty.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, servicedoctorspecialty.DoctorTable, servicedoctorspecialty.DoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ServiceDoctorSpecialty entity from the query.
// Returns a *NotFoundError when no ServiceDoctorSpecialty was found.
func (_q *ServiceDoctorSpecialtyQuery) First(ctx context.Context) (*ServiceDoctorSpecialty, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{servicedoctorspecialty.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) FirstX(ctx context.Context) *ServiceDoctorSpecialty {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ServiceDoctorSpecialty ID from the query.
// Returns a *NotFoundError when no ServiceDoctorSpecialty ID was found.
func (_q *ServiceDoctorSpecialtyQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{servicedoctorspecialty.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ServiceDoctorSpecialty entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ServiceDoctorSpecialty entity is found.
// Returns a *NotFoundError when no ServiceDoctorSpecialty entities are found.
func (_q *ServiceDoctorSpecialtyQuery) Only(ctx context.Context) (*ServiceDoctorSpecialty, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{servicedoctorspecialty.Label}
	default:
		return nil, &NotSingularError{servicedoctorspecialty.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) OnlyX(ctx context.Context) *ServiceDoctorSpecialty {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ServiceDoctorSpecialty ID in the query.
// Returns a *NotSingularError when more than one ServiceDoctorSpecialty ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ServiceDoctorSpecialtyQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{servicedoctorspecialty.Label}
	default:
		err = &NotSingularError{servicedoctorspecialty.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ServiceDoctorSpecialties.
func (_q *ServiceDoctorSpecialtyQuery) All(ctx context.Context) ([]*ServiceDoctorSpecialty, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ServiceDoctorSpecialty, *ServiceDoctorSpecialtyQuery]()
	return withInterceptors[[]*ServiceDoctorSpecialty](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) AllX(ctx context.Context) []*ServiceDoctorSpecialty {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ServiceDoctorSpecialty IDs.
func (_q *ServiceDoctorSpecialtyQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(servicedoctorspecialty.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ServiceDoctorSpecialtyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ServiceDoctorSpecialtyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ServiceDoctorSpecialtyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ServiceDoctorSpecialtyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ServiceDoctorSpecialtyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ServiceDoctorSpecialtyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ServiceDoctorSpecialtyQuery) Clone() *ServiceDoctorSpecialtyQuery {
	if _q == nil {
		return nil
	}
	return &ServiceDoctorSpecialtyQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]servicedoctorspecialty.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ServiceDoctorSpecialty{}, _q.predicates...),
		withService: _q.withService.Clone(),
		withDoctor:  _q.withDoctor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithService tells the query-builder to eager-load the nodes that are connected to
// the "service" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ServiceDoctorSpecialtyQuery) WithService(opts ...func(*ServiceQuery)) *ServiceDoctorSpecialtyQuery {
	query := (&ServiceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withService = query
	return _q
}

// WithDoctor tells the query-builder to eager-load the nodes that are connected to
// the "doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ServiceDoctorSpecialtyQuery) WithDoctor(opts ...func(*DoctorQuery)) *ServiceDoctorSpecialtyQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoctor = query
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
//	client.ServiceDoctorSpecialty.Query().
//		GroupBy(servicedoctorspecialty.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ServiceDoctorSpecialtyQuery) GroupBy(field string, fields ...string) *ServiceDoctorSpecialtyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ServiceDoctorSpecialtyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = servicedoctorspecialty.Label
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
//	client.ServiceDoctorSpecialty.Query().
//		Select(servicedoctorspecialty.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ServiceDoctorSpecialtyQuery) Select(fields ...string) *ServiceDoctorSpecialtySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ServiceDoctorSpecialtySelect{ServiceDoctorSpecialtyQuery: _q}
	sbuild.label = servicedoctorspecialty.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ServiceDoctorSpecialtySelect configured with the given aggregations.
func (_q *ServiceDoctorSpecialtyQuery) Aggregate(fns ...AggregateFunc) *ServiceDoctorSpecialtySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ServiceDoctorSpecialtyQuery) prepareQuery(ctx context.Context) error {
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
		if !servicedoctorspecialty.ValidColumn(f) {
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

func (_q *ServiceDoctorSpecialtyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ServiceDoctorSpecialty, error) {
	var (
		nodes       = []*ServiceDoctorSpecialty{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withService != nil,
			_q.withDoctor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ServiceDoctorSpecialty).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ServiceDoctorSpecialty{config: _q.config}
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
	if query := _q.withService; query != nil {
		if err := _q.loadService(ctx, query, nodes, nil,
			func(n *ServiceDoctorSpecialty, e *Service) { n.Edges.Service = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDoctor; query != nil {
		if err := _q.loadDoctor(ctx, query, nodes, nil,
			func(n *ServiceDoctorSpecialty, e *Doctor) { n.Edges.Doctor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ServiceDoctorSpecialtyQuery) loadService(ctx context.Context, query *ServiceQuery, nodes []*ServiceDoctorSpecialty, init func(*ServiceDoctorSpecialty), assign func(*ServiceDoctorSpecialty, *Service)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ServiceDoctorSpecialty)
	for i := range nodes {
		fk := nodes[i].ServiceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(service.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "service_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ServiceDoctorSpecialtyQuery) loadDoctor(ctx context.Context, query *DoctorQuery, nodes []*ServiceDoctorSpecialty, init func(*ServiceDoctorSpecialty), assign func(*ServiceDoctorSpecialty, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ServiceDoctorSpecialty)
	for i := range nodes {
		fk := nodes[i].DoctorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(doctor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ServiceDoctorSpecialtyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ServiceDoctorSpecialtyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(servicedoctorspecialty.Table, servicedoctorspecialty.Columns, sqlgraph.NewFieldSpec(servicedoctorspecialty.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servicedoctorspecialty.FieldID)
		for i := range fields {
			if fields[i] != servicedoctorspecialty.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withService != nil {
			_spec.Node.AddColumnOnce(servicedoctorspecialty.FieldServiceID)
		}
		if _q.withDoctor != nil {
			_spec.Node.AddColumnOnce(servicedoctorspecialty.FieldDoctorID)
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

func (_q *ServiceDoctorSpecialtyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(servicedoctorspecialty.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = servicedoctorspecialty.Columns
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

// ServiceDoctorSpecialtyGroupBy is the group-by builder for ServiceDoctorSpecialty entities.
type ServiceDoctorSpecialtyGroupBy struct {
	selector
	build *ServiceDoctorSpecialtyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ServiceDoctorSpecialtyGroupBy) Aggregate(fns ...AggregateFunc) *ServiceDoctorSpecialtyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ServiceDoctorSpecialtyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ServiceDoctorSpecialtyQuery, *ServiceDoctorSpecialtyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ServiceDoctorSpecialtyGroupBy) sqlScan(ctx context.Context, root *ServiceDoctorSpecialtyQuery, v any) error {
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

// ServiceDoctorSpecialtySelect is the builder for selecting fields of ServiceDoctorSpecialty entities.
type ServiceDoctorSpecialtySelect struct {
	*ServiceDoctorSpecialtyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ServiceDoctorSpecialtySelect) Aggregate(fns ...AggregateFunc) *ServiceDoctorSpecialtySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ServiceDoctorSpecialtySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ServiceDoctorSpecialtyQuery, *ServiceDoctorSpecialtySelect](ctx, _s.ServiceDoctorSpecialtyQuery, _s, _s.inters, v)
}

func (_s *ServiceDoctorSpecialtySelect) sqlScan(ctx context.Context, root *ServiceDoctorSpecialtyQuery, v any) error {
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
