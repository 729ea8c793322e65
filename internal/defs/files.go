package defs

// Common file names written into generated projects.
const (
	// ReadmeMD is the generated project README.
	ReadmeMD = "README.md"

	// PubspecYAML is the Flutter package manifest.
	PubspecYAML = "pubspec.yaml"

	// AnalysisOptionsYAML configures the Dart analyzer.
	AnalysisOptionsYAML = "analysis_options.yaml"

	// MainDart is the application entry point under lib/.
	MainDart = "main.dart"

	// WidgetTestDart is the starter widget test under test/.
	WidgetTestDart = "widget_test.dart"

	// AndroidBuildGradle carries the Android application identifier.
	AndroidBuildGradle = "android/app/build.gradle"

	// IOSIdentifierXCConfig carries the iOS bundle identifier.
	IOSIdentifierXCConfig = "ios/Flutter/AppIdentifier.xcconfig"

	// DartExt is the extension of generated source files.
	DartExt = ".dart"
)

// Generator-side file names.
const (
	// ConfigYAML is the default generator configuration file name.
	ConfigYAML = "flutterkit.yaml"

	// DotEnv is loaded at startup for FLUTTERKIT_* overrides.
	DotEnv = ".env"
)
