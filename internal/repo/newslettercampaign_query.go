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
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/internal/repo/predicate"
)

// NewsletterCampaignQuery is the builder for querying NewsletterCampaign entities.
type NewsletterCampaignQuery struct {
	config
	ctx             *QueryContext
	order           []newslettercampaign.OrderOption
	inters          []Interceptor
	predicates      []predicate.NewsletterCampaign
	withNewsletter  *NewsletterQuery
	withSubscribers *NewsletterSubscriberQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the NewsletterCampaignQuery builder.
func (_q *NewsletterCampaignQuery) Where(ps ...predicate.NewsletterCampaign) *NewsletterCampaignQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *NewsletterCampaignQuery) Limit(limit int) *NewsletterCampaignQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *NewsletterCampaignQuery) Offset(offset int) *NewsletterCampaignQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *NewsletterCampaignQuery) Unique(unique bool) *NewsletterCampaignQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *NewsletterCampaignQuery) Order(o ...newslettercampaign.OrderOption) *NewsletterCampaignQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryNewsletter chains the current query on the "newsletter" edge.
func (_q *NewsletterCampaignQuery) QueryNewsletter() *NewsletterQuery {
	query := (&NewsletterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettercampaign.Table, newslettercampaign.FieldID, selector),
			sqlgraph.To(newsletter.Table, newsletter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, newslettercampaign.NewsletterTable, newslettercampaign.NewsletterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubscribers chains the current query on the "subscribers" edge.
func (_q *NewsletterCampaignQuery) QuerySubscribers() *NewsletterSubscriberQuery {
	query := (&NewsletterSubscriberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(newslettercampaign.Table, newslettercampaign.FieldID, selector),
			sqlgraph.To(newslettersubscriber.Table, newslettersubscriber.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, newslettercampaign.SubscribersTable, newslettercampaign.SubscribersPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first NewsletterCampaign entity from the query.
// Returns a *NotFoundError when no NewsletterCampaign was found.
func (_q *NewsletterCampaignQuery) First(ctx context.Context) (*NewsletterCampaign, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{newslettercampaign.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) FirstX(ctx context.Context) *NewsletterCampaign {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first NewsletterCampaign ID from the query.
// Returns a *NotFoundError when no NewsletterCampaign ID was found.
func (_q *NewsletterCampaignQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{newslettercampaign.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single NewsletterCampaign entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one NewsletterCampaign entity is found.
// Returns a *NotFoundError when no NewsletterCampaign entities are found.
func (_q *NewsletterCampaignQuery) Only(ctx context.Context) (*NewsletterCampaign, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{newslettercampaign.Label}
	default:
		return nil, &NotSingularError{newslettercampaign.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) OnlyX(ctx context.Context) *NewsletterCampaign {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only NewsletterCampaign ID in the query.
// Returns a *NotSingularError when more than one NewsletterCampaign ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *NewsletterCampaignQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{newslettercampaign.Label}
	default:
		err = &NotSingularError{newslettercampaign.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of NewsletterCampaigns.
func (_q *NewsletterCampaignQuery) All(ctx context.Context) ([]*NewsletterCampaign, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*NewsletterCampaign, *NewsletterCampaignQuery]()
	return withInterceptors[[]*NewsletterCampaign](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) AllX(ctx context.Context) []*NewsletterCampaign {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of NewsletterCampaign IDs.
func (_q *NewsletterCampaignQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(newslettercampaign.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *NewsletterCampaignQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*NewsletterCampaignQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *NewsletterCampaignQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *NewsletterCampaignQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *NewsletterCampaignQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the NewsletterCampaignQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *NewsletterCampaignQuery) Clone() *NewsletterCampaignQuery {
	if _q == nil {
		return nil
	}
	return &NewsletterCampaignQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]newslettercampaign.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.NewsletterCampaign{}, _q.predicates...),
		withNewsletter:  _q.withNewsletter.Clone(),
		withSubscribers: _q.withSubscribers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithNewsletter tells the query-builder to eager-load the nodes that are connected to
// the "newsletter" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NewsletterCampaignQuery) WithNewsletter(opts ...func(*NewsletterQuery)) *NewsletterCampaignQuery {
	query := (&NewsletterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNewsletter = query
	return _q
}

// WithSubscribers tells the query-builder to eager-load the nodes that are connected to
// the "subscribers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NewsletterCampaignQuery) WithSubscribers(opts ...func(*NewsletterSubscriberQuery)) *NewsletterCampaignQuery {
	query := (&NewsletterSubscriberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubscribers = query
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
//	client.NewsletterCampaign.Query().
//		GroupBy(newslettercampaign.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *NewsletterCampaignQuery) GroupBy(field string, fields ...string) *NewsletterCampaignGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &NewsletterCampaignGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = newslettercampaign.Label
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
//	client.NewsletterCampaign.Query().
//		Select(newslettercampaign.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *NewsletterCampaignQuery) Select(fields ...string) *NewsletterCampaignSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &NewsletterCampaignSelect{NewsletterCampaignQuery: _q}
	sbuild.label = newslettercampaign.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a NewsletterCampaignSelect configured with the given aggregations.
func (_q *NewsletterCampaignQuery) Aggregate(fns ...AggregateFunc) *NewsletterCampaignSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *NewsletterCampaignQuery) prepareQuery(ctx context.Context) error {
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
		if !newslettercampaign.ValidColumn(f) {
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

func (_q *NewsletterCampaignQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*NewsletterCampaign, error) {
	var (
		nodes       = []*NewsletterCampaign{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withNewsletter != nil,
			_q.withSubscribers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*NewsletterCampaign).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &NewsletterCampaign{config: _q.config}
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
	if query := _q.withNewsletter; query != nil {
		if err := _q.loadNewsletter(ctx, query, nodes, nil,
			func(n *NewsletterCampaign, e *Newsletter) { n.Edges.Newsletter = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubscribers; query != nil {
		if err := _q.loadSubscribers(ctx, query, nodes,
			func(n *NewsletterCampaign) { n.Edges.Subscribers = []*NewsletterSubscriber{} },
			func(n *NewsletterCampaign, e *NewsletterSubscriber) {
				n.Edges.Subscribers = append(n.Edges.Subscribers, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *NewsletterCampaignQuery) loadNewsletter(ctx context.Context, query *NewsletterQuery, nodes []*NewsletterCampaign, init func(*NewsletterCampaign), assign func(*NewsletterCampaign, *Newsletter)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*NewsletterCampaign)
	for i := range nodes {
		fk := nodes[i].NewsletterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(newsletter.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "newsletter_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *NewsletterCampaignQuery) loadSubscribers(ctx context.Context, query *NewsletterSubscriberQuery, nodes []*NewsletterCampaign, init func(*NewsletterCampaign), assign func(*NewsletterCampaign, *NewsletterSubscriber)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*NewsletterCampaign)
	nids := make(map[uuid.UUID]map[*NewsletterCampaign]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(newslettercampaign.SubscribersTable)
		s.Join(joinT).On(s.C(newslettersubscriber.FieldID), joinT.C(newslettercampaign.SubscribersPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(newslettercampaign.SubscribersPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(newslettercampaign.SubscribersPrimaryKey[0]))
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
					nids[inValue] = map[*NewsletterCampaign]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*NewsletterSubscriber](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "subscribers" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *NewsletterCampaignQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *NewsletterCampaignQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(newslettercampaign.Table, newslettercampaign.Columns, sqlgraph.NewFieldSpec(newslettercampaign.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newslettercampaign.FieldID)
		for i := range fields {
			if fields[i] != newslettercampaign.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withNewsletter != nil {
			_spec.Node.AddColumnOnce(newslettercampaign.FieldNewsletterID)
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

func (_q *NewsletterCampaignQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(newslettercampaign.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = newslettercampaign.Columns
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

// NewsletterCampaignGroupBy is the group-by builder for NewsletterCampaign entities.
type NewsletterCampaignGroupBy struct {
	selector
	build *NewsletterCampaignQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *NewsletterCampaignGroupBy) Aggregate(fns ...AggregateFunc) *NewsletterCampaignGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *NewsletterCampaignGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NewsletterCampaignQuery, *NewsletterCampaignGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *NewsletterCampaignGroupBy) sqlScan(ctx context.Context, root *NewsletterCampaignQuery, v any) error {
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

// NewsletterCampaignSelect is the builder for selecting fields of NewsletterCampaign entities.
type NewsletterCampaignSelect struct {
	*NewsletterCampaignQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *NewsletterCampaignSelect) Aggregate(fns ...AggregateFunc) *NewsletterCampaignSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *NewsletterCampaignSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NewsletterCampaignQuery, *NewsletterCampaignSelect](ctx, _s.NewsletterCampaignQuery, _s, _s.inters, v)
}

func (_s *NewsletterCampaignSelect) sqlScan(ctx context.Context, root *NewsletterCampaignQuery, v any) error {
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
