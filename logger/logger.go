// Package logger provides adapters for popular logger libraries to work with bptree's Logger interface.
//
// The adapters allow you to use your existing logger with bptree without writing boilerplate.
// Note that the standard library's slog.Logger already implements bptree.Logger directly.
//
// Example with zap:
//
//	import (
//	    "bptree"
//	    "bptree/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree := bptree.New[int, string](bptree.DefaultOrder,
//	        bptree.WithLogger(logger.NewZap(zapLogger)))
//	    _ = tree
//	}
package logger
