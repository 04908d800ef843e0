package navigation

import (
	"gridgazer/internal/domain"
	"gridgazer/internal/paginator"
)

// Op names a cursor operation
type Op string

const (
	OpFirst        Op = "first"
	OpLast         Op = "last"
	OpNext         Op = "next"
	OpPrevious     Op = "previous"
	OpShow         Op = "show"
	OpSetFlyLeaves Op = "set_fly_leaves"
)

// Command is one navigation request. N is only read by OpSetFlyLeaves.
type Command struct {
	Op     Op
	Paging paginator.Paging
	N      int
}

// Publisher is where page changes are announced
type Publisher interface {
	Publish(event domain.DomainEvent)
}
