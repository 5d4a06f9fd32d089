package pkgname

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

// MaxLength is the longest name accepted for new packages.
const MaxLength = 214

//go:embed reserved.yaml
var reservedBytes []byte

var scopedPattern = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)

type reservedNames struct {
	Blacklist   []string `yaml:"blacklist"`
	CoreModules []string `yaml:"core_modules"`
}

var (
	reserved     reservedNames
	reservedOnce sync.Once
)

func loadReserved() reservedNames {
	reservedOnce.Do(func() {
		if err := yaml.Unmarshal(reservedBytes, &reserved); err != nil {
			panic(fmt.Sprintf("pkgname: parsing embedded reserved.yaml: %v", err))
		}
	})
	return reserved
}

// Result is the verdict for a single name.
type Result struct {
	ValidForNewPackages bool
	ValidForOldPackages bool
	Errors              []string
	Warnings            []string
}

// Problems returns errors followed by warnings.
func (r Result) Problems() []string {
	out := make([]string, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Validate applies the naming rules to name.
func Validate(name string) Result {
	var errs, warnings []string
	names := loadReserved()
	lower := strings.ToLower(name)

	if len(name) == 0 {
		errs = append(errs, "name length must be greater than zero")
	}
	if strings.HasPrefix(name, ".") {
		errs = append(errs, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errs = append(errs, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errs = append(errs, "name cannot contain leading or trailing spaces")
	}

	for _, b := range names.Blacklist {
		if lower == b {
			errs = append(errs, b+" is a blacklisted name")
		}
	}
	for _, m := range names.CoreModules {
		if lower == m {
			warnings = append(warnings, m+" is a core module name")
		}
	}

	if len(name) > MaxLength {
		warnings = append(warnings, fmt.Sprintf("name can no longer contain more than %d characters", MaxLength))
	}
	if lower != name {
		warnings = append(warnings, "name can no longer contain capital letters")
	}

	segments := strings.Split(name, "/")
	if strings.ContainsAny(segments[len(segments)-1], "~'!()*") {
		warnings = append(warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !urlFriendly(name) && !scopedURLFriendly(name) {
		errs = append(errs, "name can only contain URL-friendly characters")
	}

	return Result{
		ValidForNewPackages: len(errs) == 0 && len(warnings) == 0,
		ValidForOldPackages: len(errs) == 0,
		Errors:              errs,
		Warnings:            warnings,
	}
}

// scopedURLFriendly accepts "@scope/name" when both parts would survive URI
// component encoding unchanged.
func scopedURLFriendly(name string) bool {
	m := scopedPattern.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return false
	}
	return urlFriendly(m[1]) && urlFriendly(m[2])
}

// urlFriendly reports whether every byte of s is left untouched by URI
// component encoding.
func urlFriendly(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}

// Validator adapts Validate to the scaffolder's name-checking strategy.
type Validator struct{}

// Validate implements the scaffolder's NameValidator.
func (Validator) Validate(name string) Result {
	return Validate(name)
}
