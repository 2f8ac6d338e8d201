package eval

import (
	"fmt"
	"testing"
)

func TestHashTable(t *testing.T) {
	ht := newHashTable(getNewHashTableSeed())
	for i := 0; i < 100; i++ {
		k := String(fmt.Sprintf("key:%d", i))
		v := String(fmt.Sprintf("value:%d", i))

		ht.insert(k, v)
		u := mustGet(t, ht, k)
		if u != v {
			t.Fatalf("expected=%#+v, got=%#+v", v, u)
		}
		if ht.size() != i+1 {
			t.Fatalf("expected ht.size()=%d, got=%d", i+1, ht.size())
		}

		// inserting the same key multiple times does not cause size to increase.
		ht.insert(k, v)
		ht.insert(k, v)
		ht.insert(k, v)
		if ht.size() != i+1 {
			t.Fatalf("expected ht.size()=%d, got=%d", i+1, ht.size())
		}

		// insert a new value under the same key -- get should return the new value.
		ht.insert(k, NULL)
		u = mustGet(t, ht, k)
		if u != NULL {
			t.Fatalf("expected value=NULL, got=%#v", u)
		}
		if ht.size() != i+1 {
			t.Fatalf("expected ht.size()=%d, got=%d", i+1, ht.size())
		}
	}
	if _, found := ht.get(String("missing")); found {
		t.Fatalf("expected key \"missing\" to not be in hash table")
	}
}

func TestHashTableKeyKinds(t *testing.T) {
	ht := newHashTable(0)
	ht.insert(Integer(1), String("int"))
	ht.insert(String("1"), String("str"))
	if ht.size() != 2 {
		t.Fatalf("expected Integer(1) and String(\"1\") to be distinct keys, size=%d", ht.size())
	}
	if v := mustGet(t, ht, Integer(1)); v != String("int") {
		t.Errorf("expected \"int\", got=%s", v)
	}
	if v := mustGet(t, ht, String("1")); v != String("str") {
		t.Errorf("expected \"str\", got=%s", v)
	}
	count := 0
	ht.each(func(k Hashable, v Value) { count++ })
	if count != 2 {
		t.Errorf("expected each to visit 2 entries, got=%d", count)
	}
}

func TestAsHashable(t *testing.T) {
	for _, v := range []Value{TRUE, NULL, newArray(nil)} {
		if _, err := asHashable(v); err == nil || err.Kind != UnhashableKey {
			t.Errorf("expected %s to be unhashable, got err=%v", v, err)
		}
	}
}

func mustGet(t *testing.T, ht *hashTable, k Hashable) Value {
	value, found := ht.get(k)
	if !found {
		t.Fatalf("expected key %#v to be in hash table", k)
	}
	return value
}

func BenchmarkHashStrings(b *testing.B) {
	ht := newHashTable(getNewHashTableSeed())
	for n := 0; n < b.N; n++ {
		v := String(fmt.Sprintf("key:%d", n))
		ht.insert(v, NULL)
		ht.get(v)
	}
}

func BenchmarkHashIntegers(b *testing.B) {
	ht := newHashTable(getNewHashTableSeed())
	for n := 0; n < b.N; n++ {
		v := Integer(n)
		ht.insert(v, NULL)
		ht.get(v)
	}
}
