package conftree

import (
	"reflect"

	"github.com/gookit/goutil/envutil"
	"github.com/mitchellh/mapstructure"
)

// envDecodeHookFunc returns a mapstructure.DecodeHookFunc that expands
// ${VAR} references in string settings against the process environment.
// https://docs.docker.com/compose/environment-variables/env-file/
func envDecodeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		str, err := envutil.ParseOrErr(data.(string))
		if err != nil {
			return nil, err
		}
		return str, nil
	}
}

// decodeSettings snapshots a descriptor's settings mapping into a typed
// per-provider settings struct. Decoding copies the values out, so a
// provider never observes later caller-side mutation of the descriptor it
// was built from. Env references are expanded here, once, at construction.
func decodeSettings(settings map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: envDecodeHookFunc(),
		Result:     out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(settings)
}
