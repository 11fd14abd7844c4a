package amenity

import "errors"

var ErrUnknownPark = errors.New("park has no amenity record")
