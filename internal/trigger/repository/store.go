package repository

import "fmt"

// ValidDriver reports whether driver names a Store implementation.
func ValidDriver(driver string) error {
	switch driver {
	case DriverMemory, DriverRedis, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
