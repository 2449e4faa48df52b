// Package fault holds the error instances of the module.
//
// Every error is a single typed string value so callers can compare
// with == or test the class with one of the IsErr predicates.
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigNotTable         = InvalidError("configuration file must return a table")
	ErrLogCountTooSmall       = InvalidError("logging count must be at least 10")
	ErrLogFileName            = InvalidError("logging file must be a plain file name")
	ErrLogSizeTooSmall        = InvalidError("logging size must be at least 20000")
	ErrNotFoundConfigFile     = NotFoundError("configuration file is not found")
	ErrRatioFormat            = InvalidError("ratio must be written as num/den")
	ErrRatioOutOfRange        = InvalidError("ratio must be between 1/2 and 1")
	ErrRequiredConfigFile     = InvalidError("configuration file is required")
	ErrSoftStricterThanStrict = InvalidError("soft ratio is stricter than the strict ratio")
	ErrZeroDenominator        = InvalidError("ratio denominator is zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
