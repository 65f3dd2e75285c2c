package domain

import (
	interfaces "becoming/internal/domain/interfaces"
	types "becoming/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Domain         = types.Domain
	AlignmentLevel = types.AlignmentLevel
	Classification = types.Classification
	Delta          = types.Delta
	Answers        = types.Answers
	Signup         = types.Signup
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CheckinStore = interfaces.CheckinStore
	SignupStore  = interfaces.SignupStore
	Clipboard    = interfaces.Clipboard
	Opener       = interfaces.Opener
)
