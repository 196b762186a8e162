// internal/types/types.go
package types

// EntityID — идентификатор сущности в реестре ECS.
// Нулевое значение означает «нет сущности».
type EntityID uint64

// NoEntity — пустой дескриптор (например, у врага без цели).
const NoEntity EntityID = 0
