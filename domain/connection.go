package domain

import "strconv"

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type PostEdge struct {
	Node   *Post  `json:"node"`
	Cursor string `json:"cursor"`
}

// PostConnection is the page shape returned by both the feed and search paths.
type PostConnection struct {
	PageInfo PageInfo   `json:"pageInfo"`
	Edges    []PostEdge `json:"edges"`
}

// NewKeysetConnection packages rows fetched with PageLookahead extra rows.
// Rows beyond pageSize only signal that another page exists.
func NewKeysetConnection(rows []*Post, pageSize int, ranking RankingStrategy) *PostConnection {
	hasNext := len(rows) > pageSize
	if hasNext {
		rows = rows[:pageSize]
	}

	conn := &PostConnection{
		PageInfo: PageInfo{HasNextPage: hasNext},
		Edges:    make([]PostEdge, 0, len(rows)),
	}
	for _, row := range rows {
		conn.Edges = append(conn.Edges, PostEdge{Node: row, Cursor: ranking.EncodeCursor(row)})
	}
	if n := len(conn.Edges); n > 0 {
		end := conn.Edges[n-1].Cursor
		conn.PageInfo.EndCursor = &end
	}
	return conn
}

// RankedPost is a hydrated post with its 0-based position in the page of ids
// the search collaborator returned.
type RankedPost struct {
	Post *Post
	Rank int
}

// NewOffsetConnection packages hydrated search results. Each edge cursor is
// the absolute offset just after that edge, and EndCursor stays nil because
// offset pages are not resumed by cursor.
func NewOffsetConnection(rows []RankedPost, offset int, hasNext bool) *PostConnection {
	conn := &PostConnection{
		PageInfo: PageInfo{HasNextPage: hasNext},
		Edges:    make([]PostEdge, 0, len(rows)),
	}
	for _, row := range rows {
		conn.Edges = append(conn.Edges, PostEdge{
			Node:   row.Post,
			Cursor: strconv.Itoa(offset + row.Rank + 1),
		})
	}
	return conn
}
