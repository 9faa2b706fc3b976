package element

import "errors"

var (
	// ErrAlreadyAttached is returned when an entity's logical or surface
	// parent is set while one is already present.
	ErrAlreadyAttached = errors.New("entity already attached")
	// ErrDuplicateEntity is returned when a group already contains the entity.
	ErrDuplicateEntity = errors.New("entity already in group")
	// ErrUnknownEntity is returned when an operation names an entity the
	// group does not contain.
	ErrUnknownEntity = errors.New("entity not in group")
	// ErrCellOccupied is returned when a grid cell already holds another entity.
	ErrCellOccupied = errors.New("grid cell already occupied")
	// ErrInvalidCell is returned for grid coordinates outside the grid.
	ErrInvalidCell = errors.New("invalid grid cell")
	// ErrInvalidColumns is returned when a grid is built with fewer than one column.
	ErrInvalidColumns = errors.New("grid columns must be > 0")
	// ErrInvalidDirection is returned for values outside Up/Left/Right/Down.
	ErrInvalidDirection = errors.New("invalid navigation direction")
	// ErrNilEntity is returned when a nil entity is added to a group.
	ErrNilEntity = errors.New("nil entity")
)
