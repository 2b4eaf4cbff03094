package runs

import "testing"

func TestLowerBound(t *testing.T) {
	vals := []uint64{2, 4, 4, 4, 7, 9}
	type args struct {
		r Run
		v uint64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"below everything", args{Run{0, 5}, 1}, 0},
		{"first of the ties", args{Run{0, 5}, 4}, 1},
		{"between values", args{Run{0, 5}, 5}, 4},
		{"above everything", args{Run{0, 5}, 10}, 6},
		{"sub run offsets carry through", args{Run{2, 4}, 7}, 4},
		{"sub run miss lands one past", args{Run{2, 4}, 8}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowerBound(vals, tt.args.r, tt.args.v); got != tt.want {
				t.Errorf("LowerBound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpperBound(t *testing.T) {
	vals := []uint64{2, 4, 4, 4, 7, 9}
	type args struct {
		r Run
		v uint64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"below everything", args{Run{0, 5}, 1}, 0},
		{"after the ties", args{Run{0, 5}, 4}, 4},
		{"between values", args{Run{0, 5}, 5}, 4},
		{"above everything", args{Run{0, 5}, 9}, 6},
		{"sub run keeps ties left", args{Run{1, 3}, 4}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpperBound(vals, tt.args.r, tt.args.v); got != tt.want {
				t.Errorf("UpperBound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindInRun(t *testing.T) {
	vals := []uint64{2, 4, 4, 4, 7, 9}
	type args struct {
		r Run
		v uint64
	}
	tests := []struct {
		name   string
		args   args
		want   int
		wantOK bool
	}{
		{"present", args{Run{0, 5}, 7}, 4, true},
		{"first of the ties", args{Run{0, 5}, 4}, 1, true},
		{"absent between values", args{Run{0, 5}, 5}, 0, false},
		{"absent above", args{Run{0, 5}, 11}, 0, false},
		{"present in sub run", args{Run{3, 5}, 9}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindInRun(vals, tt.args.r, tt.args.v)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("FindInRun() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
