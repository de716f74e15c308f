// Package options serves the selectable sport, location and performance
// level lists from an external JSON file, falling back to built-in
// defaults whenever the file is missing or unreadable.
package options

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Options struct {
	Sports            []string
	Locations         []string
	PerformanceLevels []string
}

// Fallback mirrors the lists shipped with the UI; it is served whenever
// the options file cannot be read.
var Fallback = Options{
	Sports:            []string{"Fotbal", "Baschet", "Alergare", "Volei"},
	Locations:         []string{"Parcul Central", "Cluj Arena", "Faget"},
	PerformanceLevels: []string{"Incepator", "Intermediar", "Avansat"},
}

type Loader struct {
	viper *viper.Viper

	mu      sync.RWMutex
	current Options
}

func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	l := &Loader{
		viper:   v,
		current: Fallback,
	}
	l.reload()

	return l
}

// Watch reloads the option lists whenever the file changes on disk.
func (l *Loader) Watch() {
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("event options changed, reloading", zap.String("file", e.Name))
		l.reload()
	})
	l.viper.WatchConfig()
}

func (l *Loader) Current() Options {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

func (l *Loader) reload() {
	if err := l.viper.ReadInConfig(); err != nil {
		zap.L().Warn("failed to read event options, serving fallback", zap.Error(err))

		l.mu.Lock()
		l.current = Fallback
		l.mu.Unlock()

		return
	}

	loaded := Options{
		Sports:            l.viper.GetStringSlice("sports"),
		Locations:         l.viper.GetStringSlice("locations"),
		PerformanceLevels: l.viper.GetStringSlice("performanceLevels"),
	}

	// A present but empty list is treated as missing.
	if len(loaded.Sports) == 0 {
		loaded.Sports = Fallback.Sports
	}
	if len(loaded.Locations) == 0 {
		loaded.Locations = Fallback.Locations
	}
	if len(loaded.PerformanceLevels) == 0 {
		loaded.PerformanceLevels = Fallback.PerformanceLevels
	}

	l.mu.Lock()
	l.current = loaded
	l.mu.Unlock()
}
