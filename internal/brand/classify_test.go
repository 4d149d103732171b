package brand_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/alovak/cardbrand/internal/brand"
	"github.com/alovak/cardbrand/internal/pan"
	"github.com/stretchr/testify/require"
)

func TestClassify_SampleCards(t *testing.T) {
	cases := []struct {
		number string
		label  string
	}{
		{"4999999999999", "Visa"},
		{"4123456789012345", "Visa"},
		{"5212345678901234", "MasterCard"},
		{"2225123456789012", "MasterCard"},
		{"371234567890123", "American Express"},
		{"6011123456789012", "Discover"},
		{"6450123456789012", "Discover"},
		{"6062821234567890", "Hipercard"},
		{"5067123456789012", "Elo"},
		{"9876543210987654", "Bandeira desconhecida"},
	}
	for _, c := range cases {
		t.Run(c.number, func(t *testing.T) {
			require.Equal(t, c.label, brand.Classify(c.number).String())
		})
	}
}

func TestClassify_IgnoresSeparators(t *testing.T) {
	require.Equal(t, brand.Classify("4999999999999"), brand.Classify("4999-9999-9999-999"))
	require.Equal(t, brand.Visa, brand.Classify("4999-9999-9999-9"))
	require.Equal(t, brand.AmericanExpress, brand.Classify(" 3712 345678 90123 "))
	require.Equal(t, brand.Hipercard, brand.Classify("card: 6062.8212.3456.7890"))
}

func TestClassify_RuleOrder(t *testing.T) {
	// Elo prefixes starting with 4 are reached only after Visa, so Visa wins.
	for _, p := range []string{"4011", "4312", "4389", "4514", "4576"} {
		require.Equal(t, brand.Visa, brand.Classify(p+"123456789012"), p)
	}
	// Elo prefixes inside Discover's "65" are shadowed the same way.
	for _, p := range []string{"650", "6516", "6550"} {
		require.Equal(t, brand.Discover, brand.Classify(p+"1234567890123"), p)
	}
	// the rest of the Elo set is reachable
	for _, p := range []string{"5041", "5067", "5090", "6278", "6362", "6363"} {
		require.Equal(t, brand.Elo, brand.Classify(p+"123456789012"), p)
	}
}

func TestClassify_MasterCardBoundaries(t *testing.T) {
	cases := []struct {
		number string
		want   brand.Brand
	}{
		{"5100000000000000", brand.MasterCard},
		{"5599999999999999", brand.MasterCard},
		{"5000000000000000", brand.Unknown},
		{"5600000000000000", brand.Unknown},
		{"2221000000000000", brand.MasterCard},
		{"2720999999999999", brand.MasterCard},
		{"2220999999999999", brand.Unknown},
		{"2721000000000000", brand.Unknown},
	}
	for _, c := range cases {
		require.Equal(t, c.want, brand.Classify(c.number), c.number)
	}
}

func TestClassify_ShortInput(t *testing.T) {
	cases := []struct {
		number string
		want   brand.Brand
	}{
		{"", brand.Unknown},
		{"---", brand.Unknown},
		{"no digits here", brand.Unknown},
		{"4", brand.Visa},
		{"3", brand.Unknown},
		{"34", brand.AmericanExpress},
		{"5", brand.Unknown},
		{"51", brand.MasterCard},
		{"2", brand.Unknown},
		{"222", brand.Unknown},
		{"2221", brand.MasterCard},
		{"6", brand.Unknown},
		{"64", brand.Unknown},
		{"643", brand.Unknown},
		{"644", brand.Discover},
		{"649", brand.Discover},
		{"65", brand.Discover},
		{"606", brand.Unknown},
		{"6062", brand.Hipercard},
		{"627", brand.Unknown},
		{"6278", brand.Elo},
	}
	for _, c := range cases {
		require.Equal(t, c.want, brand.Classify(c.number), "%q", c.number)
	}
}

func TestClassify_NonASCIIDigitsAreStripped(t *testing.T) {
	// Arabic-Indic four followed by ASCII digits: only "5067" survives.
	require.Equal(t, brand.Elo, brand.Classify("٤5067"))
	require.Equal(t, brand.Unknown, brand.Classify("٤١٢٣"))
}

func TestClassify_Idempotent(t *testing.T) {
	for _, n := range []string{"4011123456789012", "2225123456789012", "", "x"} {
		require.Equal(t, brand.Classify(n), brand.Classify(n))
	}
}

func TestClassify_Concurrent(t *testing.T) {
	numbers := []string{"4123456789012345", "5212345678901234", "6062821234567890", "9876543210987654"}
	want := make([]brand.Brand, len(numbers))
	for i, n := range numbers {
		want[i] = brand.Classify(n)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				i := k % len(numbers)
				if got := brand.Classify(numbers[i]); got != want[i] {
					errs <- fmt.Sprintf("%s: got %v want %v", numbers[i], got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestExplain(t *testing.T) {
	b, rule, ok := brand.Explain("2225 1234 5678 9012")
	require.True(t, ok)
	require.Equal(t, brand.MasterCard, b)
	require.Equal(t, brand.MasterCard, rule.Brand)
	require.Contains(t, rule.Description, "2221-2720")

	b, _, ok = brand.Explain("9876543210987654")
	require.False(t, ok)
	require.Equal(t, brand.Unknown, b)
}

func FuzzClassify(f *testing.F) {
	for _, seed := range []string{"", "4", "4999-9999-9999-999", "2221", "650", "٤١٢٣", "abc123"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		got := brand.Classify(in)
		require.Contains(t, brand.All(), got)
		require.Equal(t, got, brand.Classify(pan.Digits(in)))
	})
}

func ExampleClassify() {
	for _, n := range []string{"4999999999999", "371234567890123", "5067123456789012", "9876543210987654"} {
		fmt.Printf("Card %s -> Brand: %s\n", n, brand.Classify(n))
	}
	// Output:
	// Card 4999999999999 -> Brand: Visa
	// Card 371234567890123 -> Brand: American Express
	// Card 5067123456789012 -> Brand: Elo
	// Card 9876543210987654 -> Brand: Bandeira desconhecida
}
