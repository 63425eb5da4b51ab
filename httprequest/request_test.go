package httprequest_test

import (
	"github.com/Olezha/fred-staging/httprequest"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	r, err := httprequest.New("/plugin/test?a=1&b=&c&a=2")
	if err != nil {
		t.Error(err)
		return
	}
	if r.Path() != "/plugin/test" {
		t.Errorf("path %s", r.Path())
	}
	if !r.HasParameters() {
		t.Error("no parameters")
	}
	if !r.IsParameterSet("a") {
		t.Error("a is not set")
	}
	if got := r.MultipleParam("a"); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("a values %v", got)
	}
	if !r.IsParameterSet("b") || r.Param("b") != "" {
		t.Errorf("b %q", r.Param("b"))
	}
	if !r.IsParameterSet("c") || r.Param("c") != "" {
		t.Errorf("c %q", r.Param("c"))
	}
}

func TestNewWithQuery(t *testing.T) {
	r, err := httprequest.NewWithQuery("/test/test.html", "a=some+text&b=abc%40def.de")
	if err != nil {
		t.Error(err)
		return
	}
	if r.Path() != "/test/test.html" {
		t.Errorf("path %s", r.Path())
	}
	if r.Param("a") != "some text" {
		t.Errorf("a %q", r.Param("a"))
	}
	if r.Param("b") != "abc@def.de" {
		t.Errorf("b %q", r.Param("b"))
	}
}

func TestNewWithoutQuery(t *testing.T) {
	r, err := httprequest.NewWithQuery("/test/test.html", "")
	if err != nil {
		t.Error(err)
		return
	}
	if r.HasParameters() {
		t.Error("has parameters")
	}
	if r.IsParameterSet("a") {
		t.Error("a is set")
	}
	if r.Param("a") != "" || r.ParamDefault("a", "X") != "X" {
		t.Error("defaults broken")
	}
	if got := r.MultipleParam("a"); got == nil || len(got) != 0 {
		t.Errorf("multiple %v", got)
	}
}

func TestDecodeFailure(t *testing.T) {
	r, err := httprequest.New("/p?x=%41%42&y=%ZZ")
	if err == nil {
		t.Error("no error for %ZZ")
		return
	}
	if r != nil {
		t.Error("partial request returned")
	}
}

func TestDecodedName(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "%6e%61me=%41%42")
	if err != nil {
		t.Error(err)
		return
	}
	if !r.IsParameterSet("name") {
		t.Error("decoded name is not set")
	}
	if r.Param("name") != "AB" {
		t.Errorf("value %q", r.Param("name"))
	}
}

func TestWithoutDecoding(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "a=%41&y=%ZZ", httprequest.WithoutDecoding())
	if err != nil {
		t.Error(err)
		return
	}
	if r.Param("a") != "%41" {
		t.Errorf("a %q", r.Param("a"))
	}
	if r.Param("y") != "%ZZ" {
		t.Errorf("y %q", r.Param("y"))
	}
}

func TestEmptySegments(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "&&a=1&&&b=2&")
	if err != nil {
		t.Error(err)
		return
	}
	if r.Params().Len() != 2 {
		t.Errorf("len %d", r.Params().Len())
	}
	if r.Param("a") != "1" || r.Param("b") != "2" {
		t.Error("values broken")
	}
	if r.IsParameterSet("") {
		t.Error("empty name is set")
	}
}

func TestEmptyName(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "=value")
	if err != nil {
		t.Error(err)
		return
	}
	if !r.IsParameterSet("") {
		t.Error("empty name is not set")
	}
	if r.Param("") != "value" {
		t.Errorf("value %q", r.Param(""))
	}
}

func TestValueWithEquals(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "eq=a=b=c")
	if err != nil {
		t.Error(err)
		return
	}
	if r.Param("eq") != "a=b=c" {
		t.Errorf("eq %q", r.Param("eq"))
	}
}

func TestIntParam(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "n=abc&m=42")
	if err != nil {
		t.Error(err)
		return
	}
	if r.IntParam("n") != 0 {
		t.Errorf("n %d", r.IntParam("n"))
	}
	if r.IntParamDefault("n", 5) != 5 {
		t.Errorf("n default %d", r.IntParamDefault("n", 5))
	}
	if r.IntParam("m") != 42 {
		t.Errorf("m %d", r.IntParam("m"))
	}
	if r.IntParamDefault("missing", 7) != 7 {
		t.Error("missing default broken")
	}
}

func TestInt64Param(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "n=9223372036854775807&bad=x")
	if err != nil {
		t.Error(err)
		return
	}
	if r.Int64Param("n") != 9223372036854775807 {
		t.Errorf("n %d", r.Int64Param("n"))
	}
	if r.Int64ParamDefault("bad", -1) != -1 {
		t.Error("bad default broken")
	}
}

func TestBoolParam(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "on=true&off=false&bad=x")
	if err != nil {
		t.Error(err)
		return
	}
	if !r.BoolParam("on") {
		t.Error("on is false")
	}
	if r.BoolParamDefault("off", true) {
		t.Error("off is true")
	}
	if !r.BoolParamDefault("bad", true) {
		t.Error("bad default broken")
	}
	if r.BoolParam("missing") {
		t.Error("missing is true")
	}
}

func TestMultipleIntParam(t *testing.T) {
	r, err := httprequest.NewWithQuery("/p", "v=3&v=bad&v=5")
	if err != nil {
		t.Error(err)
		return
	}
	if got := r.MultipleIntParam("v"); !reflect.DeepEqual(got, []int{3, 5}) {
		t.Errorf("v %v", got)
	}
	if got := r.MultipleInt64Param("v"); !reflect.DeepEqual(got, []int64{3, 5}) {
		t.Errorf("v64 %v", got)
	}
	if got := r.MultipleIntParam("missing"); got == nil || len(got) != 0 {
		t.Errorf("missing %v", got)
	}
}
