// Package buildlog parses analyzer findings out of a Maven build log.
//
// The compiler plugin prints one line per finding plus optional
// continuation lines (a documentation pointer and free-text hints):
//
//	[WARNING] /work/src/main/java/Foo.java:[697,30] [StringSplitter] String.split(String) has surprising behavior
//	  (see https://errorprone.info/bugpattern/StringSplitter)
//	  Did you mean 'Splitter.on("_").split(nsName)'?
//
// Parse keeps findings in encounter order, which downstream report
// rendering depends on.
package buildlog
