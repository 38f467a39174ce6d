package ecs

// System represents a behavior that operates on entities with specific components.
// Systems can include exported Query and Singleton fields, which the Scheduler
// binds on registration, as well as custom state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
