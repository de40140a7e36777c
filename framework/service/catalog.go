package service

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Def is a typed catalog entry. It carries no runtime payload beyond the
// name attached by DefineCatalog; its type parameter ties the entry to the
// service's value type at compile time.
type Def[T any] struct {
	name string
}

// Of creates an unnamed entry for a service of type T. Use it inside a
// catalog struct passed to DefineCatalog, which attaches the name.
func Of[T any]() *Def[T] {
	return &Def[T]{}
}

// ServiceName returns the name attached at catalog definition time.
func (d *Def[T]) ServiceName() string { return d.name }

func (d *Def[T]) attach(name string) { d.name = name }

// Entry is the runtime view of a catalog entry, implemented by every *Def.
type Entry interface {
	ServiceName() string
}

type attachable interface {
	attach(name string)
}

// DefineCatalog builds a service catalog from a struct whose fields are all
// *Def values. Each field is allocated if nil and given a name derived from
// the field: the `service:"..."` tag when present, otherwise the field name
// with its first rune lowered.
//
//	var Services = service.DefineCatalog(&struct {
//	    Counter *service.Def[*Counter]
//	    Mailer  *service.Def[Mailer] `service:"mail"`
//	}{})
//
//	// Services.Counter.ServiceName() == "counter"
//	// Services.Mailer.ServiceName()  == "mail"
//
// Call it once at start-up and treat the result as immutable. Non-Def fields
// are a programmer error and panic.
func DefineCatalog[C any](catalog *C) *C {
	v := reflect.ValueOf(catalog).Elem()
	t := v.Type()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("service: DefineCatalog wants a pointer to struct, got *%s", t.Kind()))
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Type.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("service: catalog field %s must be an exported *service.Def", field.Name))
		}
		fv := v.Field(i)
		if fv.IsNil() {
			fv.Set(reflect.New(field.Type.Elem()))
		}
		def, ok := fv.Interface().(attachable)
		if !ok {
			panic(fmt.Sprintf("service: catalog field %s is a %s, want *service.Def", field.Name, field.Type))
		}
		def.attach(entryName(field))
	}
	return catalog
}

func entryName(field reflect.StructField) string {
	if tag := field.Tag.Get("service"); tag != "" {
		return tag
	}
	r, size := utf8.DecodeRuneInString(field.Name)
	return string(unicode.ToLower(r)) + field.Name[size:]
}
