package ecs

// System processes the world once per frame
type System interface {
	Update(world *World, dt float64)
}
