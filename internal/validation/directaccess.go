package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/source"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// validateQualifiedReference checks the direct-access tail of a qualified
// reference `a.b.%Xn`. Only the right-most DirectAccess element preceded by
// its host reference is relevant; a plain `a.b.c` qualified reference with
// no direct-access tail has nothing to check here.
func (v *Validator) validateQualifiedReference(elements []ast.Statement) {
	if len(elements) < 2 {
		return
	}
	access, isAccess := elements[len(elements)-1].(*ast.DirectAccess)
	if !isAccess {
		return
	}
	hostRef := elements[len(elements)-2]
	location := access.Pos()

	targetType := v.ctx.Annotations.GetTypeOrVoid(hostRef, v.ctx.Index)
	if !targetType.IsInt() {
		v.ctx.push(diagnostic.NewIncompatibleDirectAccess(access.AccessType.String(), access.AccessType.BitWidth(), location))
		return
	}
	if !directAccessIsCompatible(access.AccessType, targetType, v.ctx.Index) {
		v.ctx.push(diagnostic.NewIncompatibleDirectAccess(access.AccessType.String(), access.AccessType.BitWidth(), location))
		return
	}
	v.validateAccessIndex(access.Index, access.AccessType, targetType, location)
}

// directAccessIsCompatible reports whether accessType's bit width fits
// within targetType's own width (e.g. %W on a BYTE host is invalid).
func directAccessIsCompatible(accessType ast.DirectAccessType, targetType *typesystem.Type, idx typesystem.SizeIndex) bool {
	return accessType.BitWidth() <= targetType.GetSizeInBits(idx)
}

// directAccessRange returns the valid index range [0, hostBits/accessBits)
// for accessType over targetType.
func directAccessRange(accessType ast.DirectAccessType, targetType *typesystem.Type, idx typesystem.SizeIndex) typesystem.Dimension {
	width := accessType.BitWidth()
	if width <= 0 {
		return typesystem.Dimension{Resolved: false}
	}
	count := targetType.GetSizeInBits(idx) / width
	if count <= 0 {
		return typesystem.Dimension{Resolved: false}
	}
	return typesystem.Dimension{Start: 0, End: int64(count - 1), Resolved: true}
}

func (v *Validator) validateAccessIndex(index ast.Statement, accessType ast.DirectAccessType, targetType *typesystem.Type, location source.Range) {
	switch idx := index.(type) {
	case *ast.LiteralInteger:
		rng := directAccessRange(accessType, targetType, v.ctx.Index)
		if rng.Resolved && (idx.Value < rng.Start || idx.Value > rng.End) {
			v.ctx.push(diagnostic.NewIncompatibleDirectAccessRange(accessType.String(), targetType.GetName(), rng, location))
		}
	default:
		refType := v.ctx.Annotations.GetTypeOrVoid(index, v.ctx.Index)
		if !refType.IsInt() {
			v.ctx.push(diagnostic.NewIncompatibleDirectAccessVariable(refType.GetName(), location))
		}
	}
}
