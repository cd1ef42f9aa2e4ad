// Package diag is the diagnostic sink for the non-fatal warnings raised while
// expanding message templates and building failure descriptions.
//
// Warnings never change a produced value; they are purely observational.
// The sink is a logr.Logger so callers can route it into whatever logging
// backend they already run:
// - SetLogger: install any logr.Logger
// - UseZap: install a *zap.Logger (bridged through zapr)
// - NewConsoleLogger: the human friendly zap console logger used by default
package diag
