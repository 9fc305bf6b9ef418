package ir

// externalDeclarations are the runtime symbols every module depends on:
// printf backs pintar, getchar is the optional EXE-mode pause, malloc/
// strlen/the memcpy intrinsic back the concat helper, and pow/fmod back the
// '^' and decimal '%' operators.
const externalDeclarations = `declare i32 @printf(i8*, ...)
declare i32 @getchar()
declare i8* @malloc(i64)
declare i64 @strlen(i8*)
declare void @llvm.memcpy.p0i8.p0i8.i64(i8*, i8*, i64, i1)
declare double @pow(double, double)
declare double @fmod(double, double)
`

// concatDefinition is the local "concat" helper referenced by string '+':
// it mallocs len(s1)+len(s2)+1 bytes, memcpy's both operands in, and NUL-
// terminates the result. Hand-written once rather than built through the
// statement/expression lowering path, since it has no source-level
// counterpart.
const concatDefinition = `define i8* @concat(i8* %s1, i8* %s2) {
entry:
  %len1 = call i64 @strlen(i8* %s1)
  %len2 = call i64 @strlen(i8* %s2)
  %sum = add i64 %len1, %len2
  %total = add i64 %sum, 1
  %result = call i8* @malloc(i64 %total)
  call void @llvm.memcpy.p0i8.p0i8.i64(i8* %result, i8* %s1, i64 %len1, i1 false)
  %dest = getelementptr i8, i8* %result, i64 %len1
  call void @llvm.memcpy.p0i8.p0i8.i64(i8* %dest, i8* %s2, i64 %len2, i1 false)
  %finalpos = getelementptr i8, i8* %result, i64 %sum
  store i8 0, i8* %finalpos
  ret i8* %result
}
`
