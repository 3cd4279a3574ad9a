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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterSubscriberQuery is the builder for querying NewsletterSubscriber entities.
type NewsletterSubscriberQuery struct {
	config
	ctx           *QueryContext
	order         []newslettersubscriber.OrderOption
	inters        []Interceptor
	predicates    []predicate.NewsletterSubscriber
	withCampaigns *NewsletterCampaignQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the NewsletterSubscriberQuery builder.
func (_q *NewsletterSubscriberQuery) Where(ps ...predicate.NewsletterSubscriber) *NewsletterSubscriberQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *NewsletterSubscriberQuery) Limit(limit int) *NewsletterSubscriberQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *NewsletterSubscriberQuery) Offset(offset int) *NewsletterSubscriberQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *NewsletterSubscriberQuery) Unique(unique bool) *NewsletterSubscriberQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *NewsletterSubscriberQuery) Order(o ...newslettersubscriber.OrderOption) *NewsletterSubscriberQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCampaigns chains the current query on the "campaigns" edge.
func (_q *NewsletterSubscriberQuery) QueryCampaigns() *NewsletterCampaignQuery {
	query := (&NewsletterCampaignClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettersubscriber.Table, newslettersubscriber.FieldID, selector),
			sqlgraph.To(newslettercampaign.Table, newslettercampaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, newslettersubscriber.CampaignsTable, newslettersubscriber.CampaignsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first NewsletterSubscriber entity from the query.
// Returns a *NotFoundError when no NewsletterSubscriber was found.
func (_q *NewsletterSubscriberQuery) First(ctx context.Context) (*NewsletterSubscriber, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{newslettersubscriber.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) FirstX(ctx context.Context) *NewsletterSubscriber {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first NewsletterSubscriber ID from the query.
// Returns a *NotFoundError when no NewsletterSubscriber ID was found.
func (_q *NewsletterSubscriberQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{newslettersubscriber.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single NewsletterSubscriber entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one NewsletterSubscriber entity is found.
// Returns a *NotFoundError when no NewsletterSubscriber entities are found.
func (_q *NewsletterSubscriberQuery) Only(ctx context.Context) (*NewsletterSubscriber, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{newslettersubscriber.Label}
	default:
		return nil, &NotSingularError{newslettersubscriber.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) OnlyX(ctx context.Context) *NewsletterSubscriber {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only NewsletterSubscriber ID in the query.
// Returns a *NotSingularError when more than one NewsletterSubscriber ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *NewsletterSubscriberQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{newslettersubscriber.Label}
	default:
		err = &NotSingularError{newslettersubscriber.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of NewsletterSubscribers.
func (_q *NewsletterSubscriberQuery) All(ctx context.Context) ([]*NewsletterSubscriber, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*NewsletterSubscriber, *NewsletterSubscriberQuery]()
	return withInterceptors[[]*NewsletterSubscriber](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) AllX(ctx context.Context) []*NewsletterSubscriber {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of NewsletterSubscriber IDs.
func (_q *NewsletterSubscriberQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(newslettersubscriber.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *NewsletterSubscriberQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*NewsletterSubscriberQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *NewsletterSubscriberQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *NewsletterSubscriberQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *NewsletterSubscriberQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the NewsletterSubscriberQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *NewsletterSubscriberQuery) Clone() *NewsletterSubscriberQuery {
	if _q == nil {
		return nil
	}
	return &NewsletterSubscriberQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]newslettersubscriber.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.NewsletterSubscriber{}, _q.predicates...),
		withCampaigns: _q.withCampaigns.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCampaigns tells the query-builder to eager-load the nodes that are connected to
// the "campaigns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NewsletterSubscriberQuery) WithCampaigns(opts ...func(*NewsletterCampaignQuery)) *NewsletterSubscriberQuery {
	query := (&NewsletterCampaignClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCampaigns = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Email string `json:"email,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.NewsletterSubscriber.Query().
//		GroupBy(newslettersubscriber.FieldEmail).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *NewsletterSubscriberQuery) GroupBy(field string, fields ...string) *NewsletterSubscriberGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &NewsletterSubscriberGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = newslettersubscriber.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Email string `json:"email,omitempty"`
//	}
//
//	client.NewsletterSubscriber.Query().
//		Select(newslettersubscriber.FieldEmail).
//		Scan(ctx, &v)
func (_q *NewsletterSubscriberQuery) Select(fields ...string) *NewsletterSubscriberSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &NewsletterSubscriberSelect{NewsletterSubscriberQuery: _q}
	sbuild.label = newslettersubscriber.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a NewsletterSubscriberSelect configured with the given aggregations.
func (_q *NewsletterSubscriberQuery) Aggregate(fns ...AggregateFunc) *NewsletterSubscriberSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *NewsletterSubscriberQuery) prepareQuery(ctx context.Context) error {
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
		if !newslettersubscriber.ValidColumn(f) {
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

func (_q *NewsletterSubscriberQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*NewsletterSubscriber, error) {
	var (
		nodes       = []*NewsletterSubscriber{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCampaigns != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*NewsletterSubscriber).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &NewsletterSubscriber{config: _q.config}
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
	if query := _q.withCampaigns; query != nil {
		if err := _q.loadCampaigns(ctx, query, nodes,
			func(n *NewsletterSubscriber) { n.Edges.Campaigns = []*NewsletterCampaign{} },
			func(n *NewsletterSubscriber, e *NewsletterCampaign) { n.Edges.Campaigns = append(n.Edges.Campaigns, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *NewsletterSubscriberQuery) loadCampaigns(ctx context.Context, query *NewsletterCampaignQuery, nodes []*NewsletterSubscriber, init func(*NewsletterSubscriber), assign func(*NewsletterSubscriber, *NewsletterCampaign)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*NewsletterSubscriber)
	nids := make(map[uuid.UUID]map[*NewsletterSubscriber]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(newslettersubscriber.CampaignsTable)
		s.Join(joinT).On(s.C(newslettercampaign.FieldID), joinT.C(newslettersubscriber.CampaignsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(newslettersubscriber.CampaignsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(newslettersubscriber.CampaignsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(uuid.UUID)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := *values[0].(*uuid.UUID)
				inValue := *values[1].(*uuid.UUID)
				if nids[inValue] == nil {
					nids[inValue] = map[*NewsletterSubscriber]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*NewsletterCampaign](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "campaigns" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *NewsletterSubscriberQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *NewsletterSubscriberQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(newslettersubscriber.Table, newslettersubscriber.Columns, sqlgraph.NewFieldSpec(newslettersubscriber.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newslettersubscriber.FieldID)
		for i := range fields {
			if fields[i] != newslettersubscriber.FieldID {
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

func (_q *NewsletterSubscriberQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(newslettersubscriber.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = newslettersubscriber.Columns
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

// NewsletterSubscriberGroupBy is the group-by builder for NewsletterSubscriber entities.
type NewsletterSubscriberGroupBy struct {
	selector
	build *NewsletterSubscriberQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *NewsletterSubscriberGroupBy) Aggregate(fns ...AggregateFunc) *NewsletterSubscriberGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *NewsletterSubscriberGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NewsletterSubscriberQuery, *NewsletterSubscriberGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *NewsletterSubscriberGroupBy) sqlScan(ctx context.Context, root *NewsletterSubscriberQuery, v any) error {
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

// NewsletterSubscriberSelect is the builder for selecting fields of NewsletterSubscriber entities.
type NewsletterSubscriberSelect struct {
	*NewsletterSubscriberQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *NewsletterSubscriberSelect) Aggregate(fns ...AggregateFunc) *NewsletterSubscriberSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *NewsletterSubscriberSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NewsletterSubscriberQuery, *NewsletterSubscriberSelect](ctx, _s.NewsletterSubscriberQuery, _s, _s.inters, v)
}

func (_s *NewsletterSubscriberSelect) sqlScan(ctx context.Context, root *NewsletterSubscriberQuery, v any) error {
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
