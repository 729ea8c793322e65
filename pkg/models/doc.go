// Package models provides shared data models and types for flutterkit.
//
// This package contains the closed enumerations and configuration types
// that every stage of the generator reads but none of them mutates.
//
// # Architectures
//
// Four architecture patterns govern how features and modules are laid out:
//   - Clean: data, domain and presentation layers per feature
//   - MVVM: models, views and view models per feature
//   - MVC: models, views and controllers per feature
//   - FeatureDriven: self-contained feature folders with shared services
//
// Use [ParseArchitecture] to accept user input in any of the display or
// slug spellings:
//
//	arch, ok := models.ParseArchitecture("Clean Architecture")
//	if ok {
//	    fmt.Println(arch.DisplayName())
//	}
//
// # State Management
//
// [StateManagement] selects the state-holding artifact attached to each
// feature (Provider, Riverpod, Bloc, GetX, MobX, Redux).
//
// # Features and Modules
//
// [FeatureTag] and [ModuleTag] are free-form display names normalized into
// directory-safe identifiers by [Normalize]. [DefaultFeature] is the baseline
// feature guaranteed by validation.
package models
