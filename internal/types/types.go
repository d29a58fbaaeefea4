// internal/types/types.go
package types

// EntityID — идентификатор сущности в мире. Выдаётся по возрастанию, ноль не используется.
type EntityID uint64
