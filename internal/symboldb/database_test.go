package symboldb_test

import (
	"testing"

	"github.com/cwbudde/corecheck/internal/symboldb"
	"github.com/cwbudde/corecheck/internal/token"
)

const classHierarchySrc = `
class Base {
public:
    Base() {}
    virtual void foo() {}
};

class Derived : public Base {
public:
    Derived() {}
    int i;
    void bar() { i = 1; }
};

class NoCtor {
public:
    int x;
};

class WithDefaultCtor {
public:
    WithDefaultCtor() {}
    int y;
};
`

func buildDB(t *testing.T, src string) *symboldb.Database {
	t.Helper()
	arena := token.NewFixture("test.cpp", src)
	return symboldb.Build(arena.First(), nil)
}

func TestSkeletonDiscoversClasses(t *testing.T) {
	db := buildDB(t, classHierarchySrc)
	for _, name := range []string{"Base", "Derived", "NoCtor", "WithDefaultCtor"} {
		if db.FindClass(name) == nil {
			t.Fatalf("expected a class scope named %q", name)
		}
	}
}

func TestDerivedFromResolvesToBaseScope(t *testing.T) {
	db := buildDB(t, classHierarchySrc)
	base := db.FindClass("Base")
	derived := db.FindClass("Derived")
	if len(derived.DerivedFromScopes) != 1 || derived.DerivedFromScopes[0] != base {
		t.Fatalf("Derived's resolved base = %v, want [Base]", derived.DerivedFromScopes)
	}
}

func TestConstructorClassificationAndCount(t *testing.T) {
	db := buildDB(t, classHierarchySrc)
	base := db.FindClass("Base")
	if base.NumConstructors != 1 {
		t.Fatalf("Base.NumConstructors = %d, want 1", base.NumConstructors)
	}
	ctor := base.FindFunction("Base")
	if ctor == nil || ctor.Type != symboldb.Constructor {
		t.Fatalf("expected Base() to be classified as Constructor, got %+v", ctor)
	}
	foo := base.FindFunction("foo")
	if foo == nil || !foo.IsVirtual {
		t.Fatalf("expected foo() to be classified virtual, got %+v", foo)
	}
}

func TestVariableCollection(t *testing.T) {
	db := buildDB(t, classHierarchySrc)
	derived := db.FindClass("Derived")
	v := derived.FindVar("i")
	if v == nil {
		t.Fatalf("expected Derived to have collected member variable i")
	}
	if v.IsClass {
		t.Fatalf("int member i should not be classified as a class-typed member")
	}
}

func TestNeedInitializationFixedPoint(t *testing.T) {
	db := buildDB(t, classHierarchySrc)

	cases := map[string]symboldb.NeedInit{
		"NoCtor":          symboldb.NeedsInit,
		"WithDefaultCtor": symboldb.NoInitNeeded,
		"Base":            symboldb.NoInitNeeded,
		"Derived":         symboldb.NoInitNeeded,
	}
	for name, want := range cases {
		c := db.FindClass(name)
		if c.NeedInitialization != want {
			t.Errorf("%s.NeedInitialization = %v, want %v", name, c.NeedInitialization, want)
		}
		if c.NeedInitialization == symboldb.Unknown {
			t.Errorf("%s.NeedInitialization did not converge", name)
		}
	}
}

const outOfLineSrc = `
class Widget {
public:
    Widget();
    void draw() const;
};

Widget::Widget() {}
void Widget::draw() const { }
`

func TestOutOfLineBodiesLinkToDeclarations(t *testing.T) {
	db := buildDB(t, outOfLineSrc)
	widget := db.FindClass("Widget")

	ctor := widget.FindFunction("Widget")
	if ctor == nil || !ctor.HasBody {
		t.Fatalf("expected Widget::Widget() out-of-line body to be linked, got %+v", ctor)
	}
	draw := widget.FindFunction("draw")
	if draw == nil || !draw.HasBody || !draw.IsConst {
		t.Fatalf("expected Widget::draw() const out-of-line body to be linked, got %+v", draw)
	}
}

const copyCtorSrc = `
class Point {
public:
    Point() {}
    Point(const Point &other) {}
};
`

func TestCopyConstructorDetection(t *testing.T) {
	db := buildDB(t, copyCtorSrc)
	point := db.FindClass("Point")
	if point.NumConstructors != 2 {
		t.Fatalf("Point.NumConstructors = %d, want 2", point.NumConstructors)
	}

	var sawCopy bool
	for _, f := range point.FunctionList {
		if f.Type == symboldb.CopyConstructor {
			sawCopy = true
		}
	}
	if !sawCopy {
		t.Fatalf("expected one function classified as CopyConstructor, got %+v", point.FunctionList)
	}
}
