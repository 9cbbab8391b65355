package pit

import "errors"

// ErrNoRenderSurface indicates the drawing context could not be
// created. It is the only fatal runtime condition: the widget renders
// nothing and the host keeps running.
var ErrNoRenderSurface = errors.New("pit: render surface unavailable")
