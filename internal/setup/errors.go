package setup

import "fmt"

type UnsupportedDriverError struct {
	Component string
	Driver    string
}

func (e UnsupportedDriverError) Error() string {
	return fmt.Sprintf("unsupported %s driver %q", e.Component, e.Driver)
}

func NewUnsupportedDriverError(component, driver string) *UnsupportedDriverError {
	return &UnsupportedDriverError{
		Component: component,
		Driver:    driver,
	}
}
