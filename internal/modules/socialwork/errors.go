package socialwork

import "errors"

var ErrTitleDescriptionRequired = errors.New("title and description are required")
