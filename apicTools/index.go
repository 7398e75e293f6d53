package apicTools

import (
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/spf13/viper"
)

func NewPtr[T any](v T) *T {
	return &v
}

func StopSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	return ch
}

// SetViperDefaultsFromObj registers every `mapstructure` key of obj in v with
// the field's current value as default, so that AutomaticEnv picks it up on
// Unmarshal.
func SetViperDefaultsFromObj(v *viper.Viper, obj any) {
	rv := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(rv.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		v.SetDefault(tagName, rv.FieldByIndex(field.Index).Interface())
	}
}
