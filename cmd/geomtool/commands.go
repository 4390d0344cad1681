package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fixgeom/internal/config"
	"github.com/Faultbox/fixgeom/internal/logger"
	"github.com/Faultbox/fixgeom/pkg/fixed32"
	"github.com/Faultbox/fixgeom/pkg/math"
)

// ErrUsage marks a malformed invocation.
var ErrUsage = errors.New("usage")

// none is printed when an operation has no valid result.
const none = "none"

// evaluator runs one command and prints its result.
type evaluator struct {
	cfg *config.Config
}

// run evaluates args as "<group> <op> [numbers...]" and writes the result to out.
func run(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected <group> <op>", ErrUsage)
	}
	group, op := args[0], args[1]
	nums, err := parseNumbers(args[2:])
	if err != nil {
		return err
	}

	logger.Debug("evaluating",
		zap.String("group", group),
		zap.String("op", op),
		zap.Strings("args", args[2:]),
	)

	e := &evaluator{cfg: cfg}
	var result string
	switch group {
	case "scalar":
		result, err = e.scalar(op, nums)
	case "vec":
		result, err = e.vec(op, nums)
	case "rect":
		result, err = e.rect(op, nums)
	default:
		return fmt.Errorf("%w: unknown group %q", ErrUsage, group)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", group, op, err)
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

func parseNumbers(args []string) ([]fixed32.Fp, error) {
	nums := make([]fixed32.Fp, len(args))
	for i, a := range args {
		f, err := fixed32.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = f
	}
	return nums, nil
}

func arity(nums []fixed32.Fp, n int) error {
	if len(nums) != n {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrUsage, n, len(nums))
	}
	return nil
}

// angle converts an angle argument to radians.
func (e *evaluator) angle(a fixed32.Fp) fixed32.Fp {
	if e.cfg.Angles.Unit == config.UnitDegrees {
		return a.DegToRad()
	}
	return a
}

func (e *evaluator) scalar(op string, n []fixed32.Fp) (string, error) {
	switch op {
	case "add", "sub", "mul", "div":
		if err := arity(n, 2); err != nil {
			return "", err
		}
		a, b := n[0], n[1]
		switch op {
		case "add":
			return e.fp(a.Add(b)), nil
		case "sub":
			return e.fp(a.Sub(b)), nil
		case "mul":
			return e.fp(a.Mul(b)), nil
		}
		if b.IsZero() {
			logger.Warn("division by zero saturates", logger.Fp("dividend", a))
		}
		return e.fp(a.Div(b)), nil
	case "sqrt", "sin", "cos", "deg2rad", "rad2deg":
		if err := arity(n, 1); err != nil {
			return "", err
		}
		a := n[0]
		switch op {
		case "sqrt":
			if a.IsNeg() {
				logger.Warn("square root of negative value is zero", logger.Fp("value", a))
			}
			return e.fp(a.Sqrt()), nil
		case "sin":
			return e.fp(e.angle(a).Sin()), nil
		case "cos":
			return e.fp(e.angle(a).Cos()), nil
		case "deg2rad":
			return e.fp(a.DegToRad()), nil
		}
		return e.fp(a.RadToDeg()), nil
	}
	return "", fmt.Errorf("%w: unknown scalar op %q", ErrUsage, op)
}

func (e *evaluator) vec(op string, n []fixed32.Fp) (string, error) {
	switch op {
	case "add", "sub", "dot", "cross":
		if err := arity(n, 4); err != nil {
			return "", err
		}
		a, b := math.NewVector(n[0], n[1]), math.NewVector(n[2], n[3])
		switch op {
		case "add":
			return e.vector(a.Add(b)), nil
		case "sub":
			return e.vector(a.Sub(b)), nil
		case "dot":
			return e.fp(a.Dot(b)), nil
		}
		return e.fp(a.Cross(b)), nil
	case "len", "lensq", "norm", "abs", "neg":
		if err := arity(n, 2); err != nil {
			return "", err
		}
		v := math.NewVector(n[0], n[1])
		switch op {
		case "len":
			return e.fp(v.Length()), nil
		case "lensq":
			return e.fp(v.LengthSquared()), nil
		case "abs":
			return e.vector(v.Abs()), nil
		case "neg":
			return e.vector(v.Neg()), nil
		}
		unit, ok := v.Normalize()
		if !ok {
			logger.Debug("zero vector has no direction", logger.Vector("vec", v))
			return none, nil
		}
		return e.vector(unit), nil
	case "scale", "rotate":
		if err := arity(n, 3); err != nil {
			return "", err
		}
		v := math.NewVector(n[0], n[1])
		if op == "scale" {
			return e.vector(v.Scale(n[2])), nil
		}
		return e.vector(v.Rotate(e.angle(n[2]))), nil
	}
	return "", fmt.Errorf("%w: unknown vec op %q", ErrUsage, op)
}

func (e *evaluator) rect(op string, n []fixed32.Fp) (string, error) {
	if len(n) < 4 {
		return "", arity(n, 4)
	}
	r := e.rectArg(n[0:4])

	switch op {
	case "area", "perimeter", "aspect", "canon", "center":
		if err := arity(n, 4); err != nil {
			return "", err
		}
		switch op {
		case "area":
			return e.fp(r.Area()), nil
		case "perimeter":
			return e.fp(r.Perimeter()), nil
		case "canon":
			return e.rectangle(r.Canon()), nil
		case "center":
			return e.vector(r.Center()), nil
		}
		ratio, ok := r.AspectRatio()
		if !ok {
			return none, nil
		}
		return e.fp(ratio), nil
	case "contains", "move", "expand", "contract":
		if err := arity(n, 6); err != nil {
			return "", err
		}
		v := math.NewVector(n[4], n[5])
		switch op {
		case "contains":
			return strconv.FormatBool(r.ContainsPoint(v)), nil
		case "move":
			return e.rectangle(r.MoveBy(v)), nil
		case "expand":
			return e.rectangle(r.Expanded(v)), nil
		}
		return e.rectangle(r.Contracted(v)), nil
	case "contains-rect", "intersects", "intersection", "union":
		if err := arity(n, 8); err != nil {
			return "", err
		}
		other := e.rectArg(n[4:8])
		switch op {
		case "contains-rect":
			return strconv.FormatBool(r.ContainsRect(other)), nil
		case "intersects":
			return strconv.FormatBool(r.Intersects(other)), nil
		case "union":
			return e.rectangle(r.Union(other)), nil
		}
		in, ok := r.Intersection(other)
		if !ok {
			return none, nil
		}
		return e.rectangle(in), nil
	}
	return "", fmt.Errorf("%w: unknown rect op %q", ErrUsage, op)
}

// rectArg builds a rect from x y w h and flags degenerate input.
func (e *evaluator) rectArg(n []fixed32.Fp) math.Rect {
	r := math.NewRect(math.NewVector(n[0], n[1]), math.NewVector(n[2], n[3]))
	if r.IsDegenerate() {
		logger.Warn("degenerate rect", logger.Rect("rect", r))
	}
	return r
}

// --- Output ---

func (e *evaluator) fp(f fixed32.Fp) string {
	if e.cfg.Output.Format == config.FormatRaw {
		return strconv.FormatInt(int64(f.Raw()), 10)
	}
	return f.Format(e.cfg.Output.Precision)
}

func (e *evaluator) vector(v math.Vector) string {
	return e.fp(v.X) + " " + e.fp(v.Y)
}

func (e *evaluator) rectangle(r math.Rect) string {
	return strings.Join([]string{
		e.fp(r.Pos.X), e.fp(r.Pos.Y), e.fp(r.Size.X), e.fp(r.Size.Y),
	}, " ")
}
