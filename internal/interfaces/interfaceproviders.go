package interfaces

import (
	"github.com/google/wire"

	"llm-advisor/internal/interfaces/httpserver"
)

// InterfacesProvider provides the HTTP interface layer
var InterfacesProvider = wire.NewSet(
	httpserver.New,
)
