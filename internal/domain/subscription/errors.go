package subscription

import "errors"

// ErrLinkExists is returned by LinkRepository.Create when the pair is already linked.
var ErrLinkExists = errors.New("subscriber is already linked to product")
