package ecs

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/fontfx"
)

// ObjectData holds a fontfx object owned by an entity.
type ObjectData struct {
	Object fontfx.Object
}

// Object is the component type for entities that own a fontfx object.
var Object = donburi.NewComponentType[ObjectData]()

var objects = donburi.NewQuery(filter.Contains(Object))

// Spawn creates an entity carrying obj.
func Spawn(world donburi.World, obj fontfx.Object) donburi.Entity {
	if obj == nil {
		panic("fontfx: cannot spawn a nil object")
	}
	e := world.Create(Object)
	Object.SetValue(world.Entry(e), ObjectData{Object: obj})
	return e
}

// UpdateAll advances every object entity by dt.
func UpdateAll(world donburi.World, dt time.Duration) {
	objects.Each(world, func(entry *donburi.Entry) {
		if o := Object.Get(entry).Object; o != nil {
			o.Update(dt)
		}
	})
}

// DrawAll draws every object entity. Entity order is not draw order; pair it
// with a renderer that sorts by Transform.Depth.
func DrawAll(world donburi.World, r fontfx.Renderer) {
	objects.Each(world, func(entry *donburi.Entry) {
		if o := Object.Get(entry).Object; o != nil {
			o.Draw(r)
		}
	})
}
