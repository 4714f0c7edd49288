package server

import (
	"tsmls/internal/config"
	"tsmls/internal/memory"
	"tsmls/internal/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "tsmls"

type Server struct {
	config  config.Config
	version string
	handler *protocol.Handler
	docs    *memory.Store
	engine  parser.Engine
}

// NewServer wires the protocol handler around the given configuration.
// version is reported to the client during initialize.
func NewServer(cfg config.Config, version string) (*server.Server, error) {
	ls := &Server{
		config:  cfg,
		version: version,
		docs:    memory.NewStore(),
		engine:  parser.NewTSEngine(10),
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentCodeAction: ls.textDocumentCodeAction,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
