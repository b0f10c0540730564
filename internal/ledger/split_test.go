package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name    string
		bill    string
		own     string
		payer   Payer
		want    string
		wantErr bool
	}{
		{name: "user pays friend share", bill: "100", own: "40", payer: PayerUser, want: "60"},
		{name: "friend pays own share", bill: "100", own: "40", payer: PayerFriend, want: "-40"},
		{name: "user pays everything", bill: "50", own: "50", payer: PayerUser, want: "0"},
		{name: "fractional", bill: "10.10", own: "3.05", payer: PayerUser, want: "7.05"},
		{name: "own exceeds bill", bill: "100", own: "150", payer: PayerUser, wantErr: true},
		{name: "negative bill", bill: "-1", own: "0", payer: PayerUser, wantErr: true},
		{name: "unknown payer", bill: "10", own: "5", payer: "both", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitAmount(dec(tt.bill), dec(tt.own), tt.payer)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParsePayer(t *testing.T) {
	p, err := ParsePayer("User")
	require.NoError(t, err)
	assert.Equal(t, PayerUser, p)

	p, err = ParsePayer(" friend ")
	require.NoError(t, err)
	assert.Equal(t, PayerFriend, p)

	_, err = ParsePayer("me")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBillSplitOwnShareClamp(t *testing.T) {
	s := NewBillSplit()
	require.True(t, s.SetBill("100"))
	require.True(t, s.SetOwnShare("40"))

	assert.False(t, s.SetOwnShare("150"))
	assert.Equal(t, "40", s.OwnShare(), "rejected input keeps the previous value")

	assert.True(t, s.SetOwnShare("100"))
	assert.Equal(t, "100", s.OwnShare())
}

func TestBillSplitRejectsMalformedInput(t *testing.T) {
	s := NewBillSplit()
	require.True(t, s.SetBill("12"))

	assert.False(t, s.SetBill("12a"))
	assert.False(t, s.SetBill("-3"))
	assert.False(t, s.SetBill("."))
	assert.False(t, s.SetBill("1e3"))
	assert.False(t, s.SetBill("1e400000000"))
	assert.False(t, s.SetBill("+5"))
	assert.Equal(t, "12", s.Bill())

	assert.True(t, s.SetBill("12."), "partially typed decimals are accepted")
	assert.True(t, s.SetOwnShare("2.5"))
	assert.False(t, s.SetOwnShare("x"))
	assert.Equal(t, "2.5", s.OwnShare())
}

func TestBillSplitOwnShareNeedsBill(t *testing.T) {
	s := NewBillSplit()
	assert.False(t, s.SetOwnShare("5"), "own share cannot exceed an empty bill")
	assert.True(t, s.SetOwnShare("0"))
}

func TestBillSplitLoweringBillClearsOwnShare(t *testing.T) {
	s := NewBillSplit()
	require.True(t, s.SetBill("100"))
	require.True(t, s.SetOwnShare("40"))

	assert.True(t, s.SetBill("50"))
	assert.Equal(t, "40", s.OwnShare(), "still within the bill")

	assert.True(t, s.SetBill("10"))
	assert.Equal(t, "10", s.Bill())
	assert.Empty(t, s.OwnShare())

	_, err := s.Amount()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestBillSplitFriendShare(t *testing.T) {
	s := NewBillSplit()
	_, ok := s.FriendShare()
	assert.False(t, ok)

	require.True(t, s.SetBill("100"))
	share, ok := s.FriendShare()
	require.True(t, ok)
	assert.True(t, share.Equal(dec("100")))

	require.True(t, s.SetOwnShare("40"))
	share, _ = s.FriendShare()
	assert.True(t, share.Equal(dec("60")))
}

func TestBillSplitAmountIncomplete(t *testing.T) {
	tests := []struct {
		name, bill, own string
	}{
		{"empty bill", "", ""},
		{"zero bill", "0", "0"},
		{"empty own share", "100", ""},
		{"zero own share", "100", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBillSplit()
			s.SetBill(tt.bill)
			s.SetOwnShare(tt.own)
			_, err := s.Amount()
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBillSplitTogglePayer(t *testing.T) {
	var s BillSplit
	assert.Equal(t, PayerUser, s.Payer(), "zero value defaults to the user")
	s.TogglePayer()
	assert.Equal(t, PayerFriend, s.Payer())
	s.TogglePayer()
	assert.Equal(t, PayerUser, s.Payer())
	s.SetPayer("nobody")
	assert.Equal(t, PayerUser, s.Payer())
}

func TestBillSplitScenarios(t *testing.T) {
	tests := []struct {
		name  string
		payer Payer
		want  string
	}{
		{"user pays", PayerUser, "80"},
		{"friend pays", PayerFriend, "-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := twoFriends(t)
			require.NoError(t, l.ToggleSelect("F2"))

			s := NewBillSplit()
			require.True(t, s.SetBill("100"))
			require.True(t, s.SetOwnShare("40"))
			s.SetPayer(tt.payer)

			f, err := s.Submit(l, "F2")
			require.NoError(t, err)
			assert.True(t, f.Balance.Equal(dec(tt.want)), "balance %s, want %s", f.Balance, tt.want)
			_, ok := l.Selected()
			assert.False(t, ok)
		})
	}
}

func TestBillSplitSubmitEmptyBillNoChange(t *testing.T) {
	l := twoFriends(t)
	require.NoError(t, l.ToggleSelect("F2"))
	before := l.Friends()

	s := NewBillSplit()
	s.SetBill("")
	_, err := s.Submit(l, "F2")
	assert.ErrorIs(t, err, ErrIncomplete)

	assert.Equal(t, before, l.Friends())
	sel, ok := l.Selected()
	require.True(t, ok, "selection survives a rejected submit")
	assert.Equal(t, "F2", sel.ID)
}

func TestBillSplitValues(t *testing.T) {
	s := NewBillSplit()
	assert.True(t, s.BillValue().IsZero())
	assert.True(t, s.OwnShareValue().IsZero())

	require.True(t, s.SetBill("45."))
	require.True(t, s.SetOwnShare("12.5"))
	assert.True(t, s.BillValue().Equal(dec("45")))
	assert.True(t, s.OwnShareValue().Equal(dec("12.5")))
}
