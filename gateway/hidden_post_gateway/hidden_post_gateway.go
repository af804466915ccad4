package hidden_post_gateway

import (
	"context"
	"errors"

	"feedengine/domain"
	"feedengine/driver/alt_db"
	apperrors "feedengine/utils/errors"
)

type HiddenPostGateway struct {
	alt_db *alt_db.AltDBRepository
}

func NewHiddenPostGateway(pool alt_db.PgxIface) *HiddenPostGateway {
	return &HiddenPostGateway{alt_db: alt_db.NewAltDBRepositoryWithPool(pool)}
}

func (g *HiddenPostGateway) HidePost(ctx context.Context, viewerID, postID string) (bool, error) {
	if g.alt_db == nil {
		return false, errors.New("database connection not available")
	}

	created, err := g.alt_db.HidePost(ctx, viewerID, postID)
	if err != nil {
		return false, g.wrap("HidePost", postID, err)
	}
	return created, nil
}

func (g *HiddenPostGateway) ReportPost(ctx context.Context, report domain.PostReport) (bool, error) {
	if g.alt_db == nil {
		return false, errors.New("database connection not available")
	}

	created, err := g.alt_db.ReportPost(ctx, report)
	if err != nil {
		return false, g.wrap("ReportPost", report.PostID, err)
	}
	return created, nil
}

func (g *HiddenPostGateway) wrap(op, postID string, err error) error {
	if errors.Is(err, apperrors.ErrPostNotFound) {
		return apperrors.NewNotFoundError("post not found", "gateway", "HiddenPostGateway", op, err,
			map[string]interface{}{"post_id": postID})
	}
	return apperrors.NewDatabaseContextError("failed to record hidden post", "gateway", "HiddenPostGateway", op, err,
		map[string]interface{}{"post_id": postID})
}
