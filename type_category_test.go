package opsheet

import "testing"

func TestParseCategory(t *testing.T) {
	for c := range Category(len(categoryNames)) {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v, want %v", c.String(), got, err, c)
		}
	}
	if _, err := ParseCategory("Teleport"); err == nil {
		t.Error("ParseCategory(Teleport) succeeded")
	}
}

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{"Done": Done, "Decline": Declined, "Progress": Progress}
	for s, want := range tests {
		if got, err := ParseStatus(s); err != nil || got != want {
			t.Errorf("ParseStatus(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
	if _, err := ParseStatus("Ok"); err == nil {
		t.Error("ParseStatus(Ok) succeeded")
	}
}

func TestMoney_Display(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{RUB(1000), "1000.00"},
		{RUB(-3003.456), "-3003.46"},
		{M(1500, "JPY"), "1500"},
		{M(1.5, ""), "1.50"},
	}
	for _, test := range tests {
		if got := test.m.Display(); got != test.want {
			t.Errorf("%#v.Display() = %q, want %q", test.m, got, test.want)
		}
	}
}

func TestMoney_DisplayExact(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{RUB(0.044985), "0.044985"},
		{RUB(150), "150.00"},
		{RUB(101.5), "101.50"},
		{M(1500, "JPY"), "1500"},
		{M(0.5, "JPY"), "0.5"},
	}
	for _, test := range tests {
		if got := test.m.DisplayExact(); got != test.want {
			t.Errorf("%#v.DisplayExact() = %q, want %q", test.m, got, test.want)
		}
	}
}
