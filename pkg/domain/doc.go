// Package domain contains the entities shared by the capture widget and the
// placeholder backend. The types are free of infrastructure concerns so they
// can be used by every layer.
package domain
