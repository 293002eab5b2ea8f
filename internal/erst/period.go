package erst

import (
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

// Current returns the item whose validity period is still open (gyldigTil
// absent). ok is false when the sequence is empty or nothing is current; a
// closed-down homepage, for instance, is a valid business state. An item
// without a period at all is a data-integrity problem and errors.
func Current[T Versioned](items []T) (T, bool, error) {
	var zero T

	for _, item := range items {
		if item.Period() == nil {
			return zero, false, dErrors.New(dErrors.CodeMalformedTemporal, "versioned item without a validity period")
		}
	}

	for _, item := range items {
		if item.Period().GyldigTil == nil {
			return item, true, nil
		}
	}

	return zero, false, nil
}

// Last returns the chronologically last item. The upstream already orders
// these sequences, so last element wins. Same malformed-period check as
// Current.
func Last[T Versioned](items []T) (T, bool, error) {
	var zero T

	if len(items) == 0 {
		return zero, false, nil
	}

	for _, item := range items {
		if item.Period() == nil {
			return zero, false, dErrors.New(dErrors.CodeMalformedTemporal, "versioned item without a validity period")
		}
	}

	return items[len(items)-1], true, nil
}
