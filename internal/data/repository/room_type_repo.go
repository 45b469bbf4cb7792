package repository

import (
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var roomTypeColumns = []string{"id", "title", "description"}

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var rt entity.RoomType
	if err := row.Scan(&rt.ID, &rt.Title, &rt.Description); err != nil {
		return nil, err
	}
	return &rt, nil
}

func roomTypeInsertArgs(rt *entity.RoomType) []any {
	return []any{rt.Title, rt.Description}
}

type RoomTypeRepository struct {
	*Store[entity.RoomType, entity.RoomType]
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) *RoomTypeRepository {
	log = log.With(zap.String("repository", "room_type"))
	return &RoomTypeRepository{
		Store: NewStore(db, log, "room_types", roomTypeColumns, scanRoomType, roomTypeInsertArgs, identity[entity.RoomType]),
	}
}
