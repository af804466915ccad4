package alt_db

import (
	"fmt"
	"strings"

	"feedengine/domain"
)

var sortColumnSQL = map[domain.SortColumn]string{
	domain.ColumnScore:       "p.score",
	domain.ColumnPublishedAt: "p.published_at",
	domain.ColumnID:          "p.id",
}

// queryArgs collects positional arguments while SQL is rendered. Values are
// never spliced into the statement text.
type queryArgs struct {
	values []any
}

func (a *queryArgs) bind(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// renderPredicates folds predicates into one conjunction.
func renderPredicates(args *queryArgs, preds []domain.Predicate) (string, error) {
	clauses := make([]string, 0, len(preds))
	for _, p := range preds {
		clause, err := renderPredicate(args, p)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, "\n\t  AND "), nil
}

func renderPredicate(args *queryArgs, p domain.Predicate) (string, error) {
	switch p.Kind {
	case domain.PredicatePublishedVisible:
		return fmt.Sprintf("(p.published_at IS NOT NULL AND p.published_at <= %s)", args.bind(p.Cutoff)), nil

	case domain.PredicateNotHidden:
		return fmt.Sprintf("NOT EXISTS (SELECT 1 FROM hidden_post h WHERE h.post_id = p.id AND h.user_id = %s)", args.bind(p.ViewerID)), nil

	case domain.PredicateSourceIn:
		return fmt.Sprintf("p.source_id = ANY(%s)", args.bind(p.Values)), nil

	case domain.PredicateTagIn:
		return fmt.Sprintf("EXISTS (SELECT 1 FROM post_tag pt WHERE pt.post_id = p.id AND pt.tag = ANY(%s))", args.bind(p.Values)), nil

	case domain.PredicateSavedFeed:
		return renderSavedFeed(args, p), nil

	case domain.PredicateUnread:
		return fmt.Sprintf("NOT EXISTS (SELECT 1 FROM view v WHERE v.post_id = p.id AND v.user_id = %s)", args.bind(p.ViewerID)), nil

	case domain.PredicateAfterCursor:
		if len(p.Columns) == 0 {
			return "", fmt.Errorf("cursor predicate without columns")
		}
		cols := make([]string, len(p.Columns))
		params := make([]string, len(p.Columns))
		for i, col := range p.Columns {
			name, ok := sortColumnSQL[col]
			if !ok {
				return "", fmt.Errorf("unknown sort column %q", col)
			}
			cols[i] = name
			params[i] = args.bind(p.Key.Value(col))
		}
		// Every ranking column sorts descending, so "after" is a row-value less-than.
		return fmt.Sprintf("(%s) < (%s)", strings.Join(cols, ", "), strings.Join(params, ", ")), nil

	default:
		return "", fmt.Errorf("unknown predicate kind %q", p.Kind)
	}
}

// renderSavedFeed resolves the feed inside the post query. The feed must
// belong to the viewer, and each of its source and tag lists constrains posts
// only when it is non-empty.
func renderSavedFeed(args *queryArgs, p domain.Predicate) string {
	feed := args.bind(p.FeedID)
	viewer := args.bind(p.ViewerID)
	return fmt.Sprintf(`(EXISTS (SELECT 1 FROM feed f WHERE f.id = %[1]s AND f.user_id = %[2]s)
	  AND (NOT EXISTS (SELECT 1 FROM feed_source fs WHERE fs.feed_id = %[1]s)
	       OR p.source_id IN (SELECT fs.source_id FROM feed_source fs WHERE fs.feed_id = %[1]s))
	  AND (NOT EXISTS (SELECT 1 FROM feed_tag ft WHERE ft.feed_id = %[1]s)
	       OR EXISTS (SELECT 1 FROM post_tag pt JOIN feed_tag ft ON ft.tag = pt.tag
	                  WHERE pt.post_id = p.id AND ft.feed_id = %[1]s)))`, feed, viewer)
}

func renderOrderBy(columns []domain.SortColumn) (string, error) {
	parts := make([]string, len(columns))
	for i, col := range columns {
		name, ok := sortColumnSQL[col]
		if !ok {
			return "", fmt.Errorf("unknown sort column %q", col)
		}
		parts[i] = name + " DESC"
	}
	return strings.Join(parts, ", "), nil
}

// postSelect is the projection shared by the feed page and hydration queries.
// The marks laterals return at most one row, so joining them never changes
// the number of posts. The viewer argument is always bound first; a NULL
// viewer matches no marks.
const postSelect = `
	SELECT
		p.id,
		p.source_id,
		p.title,
		p.url,
		p.image,
		p.placeholder,
		p.ratio,
		p.read_time,
		p.published_at,
		p.created_at,
		p.score,
		COALESCE(tags.tag_names, '{}') AS tags,
		COALESCE(rd.is_read, FALSE) AS is_read,
		COALESCE(bm.is_bookmarked, FALSE) AS is_bookmarked,
		s.id,
		s.name,
		s.image
	FROM post p
	JOIN source s ON s.id = p.source_id
	LEFT JOIN LATERAL (
		SELECT ARRAY_AGG(pt.tag ORDER BY pt.tag) AS tag_names
		FROM post_tag pt
		WHERE pt.post_id = p.id
	) tags ON TRUE
	LEFT JOIN LATERAL (
		SELECT TRUE AS is_read
		FROM view v
		WHERE v.post_id = p.id AND v.user_id = $1::text
		LIMIT 1
	) rd ON TRUE
	LEFT JOIN LATERAL (
		SELECT TRUE AS is_bookmarked
		FROM bookmark b
		WHERE b.post_id = p.id AND b.user_id = $1::text
		LIMIT 1
	) bm ON TRUE`

func scanPost(rows interface{ Scan(dest ...any) error }) (*domain.Post, error) {
	var post domain.Post
	var tags []string

	err := rows.Scan(
		&post.ID,
		&post.SourceID,
		&post.Title,
		&post.URL,
		&post.Image,
		&post.Placeholder,
		&post.Ratio,
		&post.ReadTime,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.Score,
		&tags,
		&post.Read,
		&post.Bookmarked,
		&post.Source.ID,
		&post.Source.Name,
		&post.Source.Image,
	)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	post.Tags = tags
	return &post, nil
}
