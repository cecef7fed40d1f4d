package bench

import (
	"testing"

	"github.com/TheBitDrifter/table"
	"github.com/silo-ecs/silo"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func BenchmarkIterWarehouseGet(b *testing.B) {
	b.StopTimer()

	velocity := silo.FactoryNewComponent[Velocity]()
	position := silo.FactoryNewComponent[Position]()
	schema := table.Factory.NewSchema()
	storage := silo.Factory.NewStorage(schema)

	storage.NewEntities(nPosVel, position, velocity)
	storage.NewEntities(nPos, position)

	query := silo.Factory.NewQuery().And(velocity, position)
	cursor := silo.Factory.NewCursor(query, storage)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for cursor.Next() {
			pos := position.GetFromCursor(cursor)
			vel := velocity.GetFromCursor(cursor)

			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}
