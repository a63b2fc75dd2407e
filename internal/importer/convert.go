package importer

import "github.com/alexanderramin/fittrack/internal/domain"

// Convert turns a validated PackageFile into domain packages, preserving file order.
// Call ValidatePackageFile first; Convert assumes the file is valid.
func Convert(file *PackageFile) []domain.Package {
	pkgs := make([]domain.Package, 0, len(file.Workouts))
	for _, w := range file.Workouts {
		data := make([]float64, len(w.Data))
		copy(data, w.Data)
		pkgs = append(pkgs, domain.Package{Code: w.Code, Data: data})
	}
	return pkgs
}
