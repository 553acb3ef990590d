package theme

import (
	"fmt"

	appErrors "scopestyle/internal/errors"
)

func invalidThemeError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidTheme, fmt.Sprintf("invalid theme: %s", reason), nil)
}

func attributeParseError(key string, value any, err error) error {
	return appErrors.New(appErrors.CodeAttributeParse, fmt.Sprintf("attribute %s=%v", key, value), err)
}

func unknownColorSpaceError(name string) error {
	return appErrors.New(appErrors.CodeUnknownColorSpace, fmt.Sprintf("unknown colour space %q", name), nil)
}

func decodeError(format Format, err error) error {
	return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decode %s theme", format), err)
}
